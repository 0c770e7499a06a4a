// Package domain contains the core model for wxsend.
//
// The domain is transport-agnostic: it does not depend on net/http, JSON parsing,
// or the process environment. Infra adapters map into/from these types.
package domain

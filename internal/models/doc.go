// Package models defines the wire records exchanged with the SplitMacha API.
//
// # Design Principles
//
// 1. **Flat records**: entities reference each other by ID strings, never by
// pointer, so records marshal cleanly and avoid circular references.
//
// 2. **Server-owned fields**: IDs, timestamps, and status fields are assigned
// by the backend. Create/Update request types carry only the fields a client
// may set; the client never defaults or derives server-owned fields.
//
// 3. **Wire fidelity**: JSON tags match the backend contract exactly. These
// types pass through the repository layer untransformed.
//
// Timestamps are RFC 3339 strings as produced by the backend.
package models

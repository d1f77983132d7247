// Package hint provides the type expressions attached to declared
// parameters: concrete types (Of), unions, containers with optional deep
// element checks, literals, and a pass-through form for declarations the
// checker does not understand. A textual grammar (Parse) backs signature
// declaration files.
package hint

// Package ports holds the interfaces the layers meet at. Handlers call the
// service ports, which internal/app implements. Services call the client
// ports, which the payroll ACL and the employee caches implement.
package ports

// Package provider defines the driver-services contract: how a data access
// runtime builds commands, resolves manifests and creates or drops the
// database for one kind of store.
//
// Implementations embed Base, implement the rest of Services, and register
// themselves by name:
//
//	func init() {
//	    provider.Register("sqlite", sqlprovider.SQLite)
//	}
//
//	svc, err := provider.Lookup("sqlite")
//
// Optional behavior is expressed as capability interfaces
// (SpatialReaderProvider, SpatialServicesProvider, ParameterBinder). Callers
// check for them with a type assertion and fall back to the package
// defaults when absent.
//
// Commands run directly on a driver.Conn. ExecConn and QueryConn pick the
// fastest path the connection supports.
package provider

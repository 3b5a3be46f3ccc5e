// Package profiled intercepts provider driver services so that database
// work done through them shows up in traces, metrics and the request
// profile.
//
// # Quick Start
//
//	svc, err := profiled.Instance("postgres",
//	    sentinelsql.WithDBSystem("postgresql"),
//	    sentinelsql.WithLogger(logger),
//	)
//	if err != nil {
//	    return err // provider.ErrNotRegistered: nothing to retry
//	}
//
//	def, err := svc.CreateCommandDefinitionFromTree(manifest, tree)
//	cmd, err := def.CreateCommand()
//	cmd.SetConn(conn) // decorated connections are unwrapped
//	rows, err := cmd.QueryContext(ctx)
//
// # Interception
//
// Connections and readers passed in are unwrapped with sentinelsql.RealConn
// and sentinelsql.RealRows before the provider sees them. Commands built
// from command trees are decorated with ProfiledCommand, and so is every
// command later created from the same definition.
//
// Optional provider capabilities are forwarded when present. When absent,
// the provider package defaults apply and the substitution is logged at
// debug level; it is never an error.
package profiled

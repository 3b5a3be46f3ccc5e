// Package profiler records per-request profiling sessions: a tree of named
// timings, each carrying custom timings for external calls such as SQL
// commands.
//
// # Sessions
//
//	ctx, prof := profiler.Start(ctx, "GET /users",
//	    profiler.WithStorage(store),
//	)
//	defer prof.Stop(ctx)
//
//	ctx, step := profiler.Step(ctx, "load users")
//	rows, err := db.QueryContext(ctx, "SELECT * FROM users")
//	step.Stop()
//
// Commands executed through the sentinel sql driver wrapper, or through
// profiled provider commands, find the profiler in the context and record
// themselves under the "sql" category.
//
// # Storage
//
// MemoryStorage keeps a bounded number of profiles in process.
// RedisStorage shares them across instances and is guarded by a circuit
// breaker.
//
// # HTTP
//
// Middleware starts a profiler per request and announces its ID in the
// X-MiniProfiler-Ids header. Handler serves stored profiles as JSON.
package profiler

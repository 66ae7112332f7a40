/*
Package rx bridges SugarRecord's imperative storage contract into cold,
single-shot asynchronous producers.

An Adapter wraps a storage.Store and exposes four operations:

	a := rx.NewAdapter(store)

	a.Mutate(op)                          // inline, void, never fails
	a.MutateInBackground(op)              // off-goroutine, void, never fails
	a.Fetch(req)                          // inline, one []T then complete
	rx.FetchInBackground(a, req, mapper)  // off-goroutine, one []U delivered
	                                      // on the delivery scheduler

Every producer is cold: nothing executes until Subscribe (or Await) is
called, and each subscription is an independent execution. A producer
emits at most one value, always before its single terminal signal.
Disposing a subscription suppresses delivery of further signals but
does not interrupt storage work already in flight.

Error policy: the fetch operations terminate with a failure only when
the storage layer reports an error belonging to the errors package
taxonomy. Any other error is swallowed and surfaces as an empty result
followed by normal completion. This mirrors the behavior of the system
this library replaces; callers that must distinguish "empty" from
"failed in an unrecognized way" should keep their storage errors inside
the taxonomy.

Scheduling is injectable. Foreground operations run on the subscribing
goroutine; background operations dispatch to the adapter's background
scheduler (a plain goroutine by default) and mapped background fetches
deliver on the adapter's delivery scheduler (a shared serial loop by
default, standing in for a UI thread). Tests typically configure both
to Immediate to make executions synchronous.
*/
package rx

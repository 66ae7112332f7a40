/*
Package sugarrecord wraps an object-persistence abstraction in cold,
single-shot reactive producers, so save and fetch flows compose with
map, observe-on and error propagation instead of callback-passing code.

The library is layered:

  - storage: the persistence contract (Store, Context, Saver, Request)
    and two backends, an in-memory store and a DynamoDB store
  - rx: the reactive adapter — Mutate, MutateInBackground, Fetch and
    FetchInBackground over any storage.Store
  - errors: the recognized storage failure taxonomy
  - registry: index maps binding entity types to table key patterns

The root package ties them together with a per-type store registry:

	reg := sugarrecord.NewTypeRegistry()
	sugarrecord.RegisterStore(reg, "tracks", memory.New[Track]())

	a, _ := sugarrecord.ReactiveStore[Track](reg, "tracks")

	a.Mutate(func(c storage.Context, save storage.Saver) {
	    c.Put(Track{ID: "1", Title: "Opening"})
	    save()
	}).Subscribe(rx.Observer[rx.Void]{
	    OnComplete: func() {}, // persisted
	})

	tracks, _, err := a.Fetch(storage.NewRequest[Track]()).Await(ctx)

Producers are lazy (no work before subscription), emit at most one
value, and terminate exactly once. Background variants dispatch storage
work off the subscribing goroutine; mapped background fetches deliver
their results on a configurable scheduler so they can be observed on
the goroutine an application treats as its main loop.
*/
package sugarrecord

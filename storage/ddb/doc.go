/*
Package ddb implements storage.Store on top of AWS DynamoDB.

Entities are placed in a single-table design using the index map
registered for their type (see package registry). Key macros like
{ID} are expanded from the entity's own fields at persist time:

	registry.RegisterIndexMap[Track](map[string]string{
	    "PK": "TRACK#{ID}",
	    "SK": "TRACK",
	})

	store, err := ddb.New[Track](accessKey, secretKey, region, table)

Operation stages Put and Delete calls in memory; invoking the Saver
flushes them to the table. Fetch requires a request with a key
condition, which is compiled into a native Query; the request's
in-memory predicate, ordering and limit are then applied to the page
the query returns.

The store's Background handle shares the underlying client, which is
safe for concurrent use.
*/
package ddb

// Package listapi is the HTTP client for the remote list service.
//
// The service answers a single GET with a JSON object whose values are arrays
// of item records:
//
//	{
//	  "animals": [
//	    {"id": "1", "name": "Cat", "scientific_name": "Felis catus", "list_number": 1}
//	  ]
//	}
//
// Response keeps the object's keys in document order so that callers can
// build collections ordered by first appearance. Records whose list_number is
// missing or null decode with a nil ListNumber.
//
// # Errors
//
// Every failure is an *APIError classified by ErrorType (timeout, connection
// refused, DNS, HTTP status, parse, canceled). IsRetryable reports whether a
// manual retry is worth offering; the client itself never retries.
//
// # Usage Example
//
//	client := listapi.NewClient("")
//	client.SetTimeout(10 * time.Second)
//	resp, err := client.FetchLists(ctx)
//	if err != nil {
//	    fmt.Println(listapi.ShortMessage(err))
//	    return err
//	}
package listapi

package enrich

import "fmt"

// EnrichmentError means no usable data could be produced for one candidate
// from any enabled source. It is terminal for that candidate only; the batch
// continues.
type EnrichmentError struct {
	Name string
	Err  error
}

func (e *EnrichmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("enrich %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("enrich %q: no data from any enabled source", e.Name)
}

func (e *EnrichmentError) Unwrap() error {
	return e.Err
}

package lrt

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"

	"git.sr.ht/~flobar/lrt/pkg/lrt/ml"
)

// Result holds the fitted models and the test outcome for one
// two-group comparison.
type Result struct {
	Data   string         `json:"data,omitempty"`
	Feeds  [2]string      `json:"feeds"`
	N      int            `json:"n"`
	Null   ml.Result      `json:"null"`
	Effect ml.Result      `json:"effect"`
	Test   *ml.TestResult `json:"test,omitempty"`
}

// Reliable reports whether both model fits converged.  The test
// outcome of an unreliable result must not be trusted.
func (r *Result) Reliable() bool {
	return r.Null.Converged && r.Effect.Converged
}

// ReadResult reads a result from a gzip compressed json file.
func ReadResult(path string) (*Result, error) {
	Log("reading result from %s", path)
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readResult %s: %v", path, err)
	}
	defer in.Close()
	zip, err := gzip.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("readResult %s: %v", path, err)
	}
	defer zip.Close()
	var r Result
	if err := json.NewDecoder(zip).Decode(&r); err != nil {
		return nil, fmt.Errorf("readResult %s: %v", path, err)
	}
	return &r, nil
}

// Write writes the result as json encoded, gziped file to the given
// path overwriting any previous existing results.
func (r *Result) Write(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %v", path, err)
	}
	defer func() {
		if exx := out.Close(); exx != nil && err == nil {
			err = fmt.Errorf("write %s: %v", path, exx)
		}
	}()
	zip := gzip.NewWriter(out)
	defer func() {
		if exx := zip.Close(); exx != nil && err == nil {
			err = fmt.Errorf("write %s: %v", path, exx)
		}
	}()
	if err := json.NewEncoder(zip).Encode(r); err != nil {
		return fmt.Errorf("write %s: %v", path, err)
	}
	return nil
}

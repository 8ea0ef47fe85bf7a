package payload

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxPayloadBytes bounds how much of a request body is read before decoding
// gives up.
const maxPayloadBytes = 1 << 20

// DecodePayload decodes a JSON body into object. Numbers are kept as
// json.Number so block values reach range validation with their literal form.
func DecodePayload(r *http.Request, object any) (err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxPayloadBytes)
	decoder := json.NewDecoder(r.Body)
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()
	decoder.UseNumber()

	err = decoder.Decode(object)
	if err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return nil
}

package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Ограничение тела запроса
const maxBodyBytes = 1 << 20

// Decode читает JSON тело; неизвестные поля считаются ошибкой
func Decode[T any](body io.Reader) (T, error) {
	var payload T

	dec := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return payload, errors.New("empty request body")
		}
		return payload, fmt.Errorf("invalid request body: %w", err)
	}
	return payload, nil
}

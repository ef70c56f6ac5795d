package webutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"smart_vocab/internal/model"
)

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	return nil
}

// ParseOptionalIntQuery は整数クエリパラメータを読みます。未指定なら nil を返します。
func ParseOptionalIntQuery(r *http.Request, name string) (*int, *model.AppError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, model.NewAppError("INVALID_QUERY_PARAM", name+"は整数で指定してください。", name, model.ErrInvalidInput)
	}
	return &n, nil
}

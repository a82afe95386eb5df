package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
	token   string
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	// Body сериализуется в JSON. nil - запрос без тела.
	Body any
}

// MakeRequest прогоняет JSON запрос через роутер и возвращает ответ.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
	for _, opt := range opts {
		opt(&options)
	}

	var body io.Reader
	if args.Body != nil {
		raw, err := json.Marshal(args.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %s", err.Error())
		}
		body = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(args.Method, args.URL, body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}
	if options.token != "" {
		request.Header.Set("Authorization", "Bearer "+options.token)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	return recorder.Result(), nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers[name] = value
	}
}

// WithBearer авторизует запрос токеном. Пустой токен - запрос без заголовка Authorization.
func WithBearer(token string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.token = token
	}
}

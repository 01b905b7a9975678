package restclient

import (
	"bytes"
	"net/http"
	"net/url"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is swapped out by tests.
var (
	Client HTTPClient
)

func init() {
	Client = &http.Client{}
}

func Post(target string, body []byte, headers http.Header) (*http.Response, error) {
	request, err := http.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	request.Header = headers
	return Client.Do(request)
}

func PostForm(target string, form url.Values) (*http.Response, error) {
	headers := http.Header{
		"Content-Type": {"application/x-www-form-urlencoded"},
	}
	return Post(target, []byte(form.Encode()), headers)
}

package tokenexchange

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pashonic/tubesetup/src/clientsecret"
	"github.com/pashonic/tubesetup/src/utils/mockclient"
	"github.com/pashonic/tubesetup/src/utils/restclient"
)

func init() {
	restclient.Client = &mockclient.MockClient{}
}

var testCreds = &clientsecret.Credentials{ClientID: "id-1", ClientSecret: "sec-1"}

func respondWith(status int, body string, capture *url.Values) {
	mockclient.GetDoFunc = func(req *http.Request) (*http.Response, error) {
		if capture != nil {
			raw, _ := io.ReadAll(req.Body)
			form, _ := url.ParseQuery(string(raw))
			*capture = form
		}
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(bytes.NewReader([]byte(body))),
			Header:     http.Header{},
		}, nil
	}
}

func TestExchangeCode(t *testing.T) {

	// Test valid response
	var form url.Values
	respondWith(200, `{"access_token":"at-1","refresh_token":"rt-1","expires_in":3599}`, &form)
	refreshToken, err := ExchangeCode(testCreds, "code-1")
	require.Nil(t, err)
	assert.EqualValues(t, "rt-1", refreshToken)
	assert.EqualValues(t, "authorization_code", form.Get("grant_type"))
	assert.EqualValues(t, "code-1", form.Get("code"))
	assert.EqualValues(t, "id-1", form.Get("client_id"))
	assert.EqualValues(t, "sec-1", form.Get("client_secret"))
	assert.EqualValues(t, clientsecret.RedirectURL, form.Get("redirect_uri"))

	// Test response without refresh_token
	respondWith(200, `{"access_token":"at-1","expires_in":3599}`, nil)
	refreshToken, err = ExchangeCode(testCreds, "code-1")
	assert.EqualValues(t, "", refreshToken)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "refresh_token")
	assert.Contains(t, err.Error(), `"access_token":"at-1"`)

	// Test upstream rejection carries status and body
	respondWith(400, `{"error":"invalid_grant"}`, nil)
	_, err = ExchangeCode(testCreds, "expired-code")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestRedeemAccessToken(t *testing.T) {

	// Test valid response
	var form url.Values
	respondWith(200, `{"access_token":"at-2","expires_in":3599,"token_type":"Bearer"}`, &form)
	accessToken, err := RedeemAccessToken(testCreds, "rt-1")
	require.Nil(t, err)
	assert.EqualValues(t, "at-2", accessToken)
	assert.EqualValues(t, "refresh_token", form.Get("grant_type"))
	assert.EqualValues(t, "rt-1", form.Get("refresh_token"))

	// Test response without access_token
	respondWith(200, `{"token_type":"Bearer"}`, nil)
	accessToken, err = RedeemAccessToken(testCreds, "rt-1")
	assert.EqualValues(t, "", accessToken)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "access_token")

	// Test revoked token rejection
	respondWith(400, `{"error":"invalid_grant","error_description":"Token has been expired or revoked."}`, nil)
	_, err = RedeemAccessToken(testCreds, "rt-dead")
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "revoked")
}

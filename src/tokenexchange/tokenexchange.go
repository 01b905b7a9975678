package tokenexchange

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2/google"

	"github.com/pashonic/tubesetup/src/clientsecret"
	"github.com/pashonic/tubesetup/src/utils/restclient"
)

// ExchangeCode redeems a user-approved authorization code for a refresh
// token. The code is single-use; a second call with the same code fails
// upstream.
func ExchangeCode(creds *clientsecret.Credentials, code string) (string, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"client_id":     {creds.ClientID},
		"client_secret": {creds.ClientSecret},
		"redirect_uri":  {clientsecret.RedirectURL},
	}
	body, err := postTokenForm(form)
	if err != nil {
		return "", fmt.Errorf("code exchange: %w", err)
	}
	refreshToken := gjson.GetBytes(body, "refresh_token").String()
	if refreshToken == "" {
		return "", fmt.Errorf("token response has no refresh_token: %s", strings.TrimSpace(string(body)))
	}
	return refreshToken, nil
}

// RedeemAccessToken trades the refresh token for a short-lived access token.
// This is the proof the refresh token actually works.
func RedeemAccessToken(creds *clientsecret.Credentials, refreshToken string) (string, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"client_id":     {creds.ClientID},
		"client_secret": {creds.ClientSecret},
	}
	body, err := postTokenForm(form)
	if err != nil {
		return "", fmt.Errorf("refresh token validation: %w", err)
	}
	accessToken := gjson.GetBytes(body, "access_token").String()
	if accessToken == "" {
		return "", fmt.Errorf("token response has no access_token: %s", strings.TrimSpace(string(body)))
	}
	return accessToken, nil
}

func postTokenForm(form url.Values) ([]byte, error) {
	res, err := restclient.PostForm(google.Endpoint.TokenURL, form)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint returned status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

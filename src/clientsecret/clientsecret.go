package clientsecret

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/youtube/v3"
)

// RedirectURL is registered with the Google OAuth client; the landing page
// just shows the user the code to paste back.
const RedirectURL = "https://pashonic.github.io/tubesetup/requestheaders.html"

type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Load reads a Google client secret download and pulls out the credential
// pair. The file is the provider's format, not ours, so extraction probes the
// top level and the usual "installed"/"web" wrappers.
func Load(path string) (*Credentials, error) {
	byteData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(byteData)
}

func Parse(data []byte) (*Credentials, error) {
	clientID := field(data, "client_id")
	clientSecret := field(data, "client_secret")
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("client secret file is missing client_id or client_secret: %s", strings.TrimSpace(string(data)))
	}
	return &Credentials{ClientID: clientID, ClientSecret: clientSecret}, nil
}

func field(data []byte, name string) string {
	for _, path := range []string{name, "installed." + name, "web." + name} {
		if value := gjson.GetBytes(data, path); value.String() != "" {
			return value.String()
		}
	}
	return ""
}

func (c *Credentials) Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  RedirectURL,
		Scopes:       []string{youtube.YoutubeScope},
	}
}

// AuthURL returns the consent page URL. ApprovalForce makes Google hand out a
// refresh token even when the user approved this client before.
func (c *Credentials) AuthURL() string {
	return c.Config().AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

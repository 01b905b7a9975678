package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/browser"
	log "github.com/sirupsen/logrus"

	"github.com/pashonic/tubesetup/src/authcode"
	"github.com/pashonic/tubesetup/src/channelinfo"
	"github.com/pashonic/tubesetup/src/clientsecret"
	"github.com/pashonic/tubesetup/src/tokenexchange"
	"github.com/pashonic/tubesetup/src/tokenstore"
	"github.com/pashonic/tubesetup/src/utils/sendsns"
)

const (
	default_config_file        = "config.toml"
	default_client_secret_file = "client_secret.json"
	default_refresh_token_file = "refresh_token.txt"
)

type config struct {
	ClientSecretFile string `toml:"client_secret_file"`
	RefreshTokenFile string `toml:"refresh_token_file"`
	NoBrowser        bool   `toml:"no_browser"`
	Alerts           struct {
		SnsTopicArn string `toml:"sns_topic_arn"`
	} `toml:"alerts"`
}

func main() {

	// Check for config file path
	configFile := default_config_file
	configGiven := len(os.Args) == 2
	if configGiven {
		configFile = os.Args[1]
	}

	// Load configuration, defaults apply when the default file is absent
	conf := config{
		ClientSecretFile: default_client_secret_file,
		RefreshTokenFile: default_refresh_token_file,
	}
	if _, err := toml.DecodeFile(configFile, &conf); err != nil {
		if configGiven || !os.IsNotExist(err) {
			log.Fatalln(err)
		}
	}

	// Load client credentials
	creds, err := clientsecret.Load(conf.ClientSecretFile)
	if err != nil {
		log.Fatalln(err)
	}

	// Ask user to approve access from the browser
	authURL := creds.AuthURL()
	fmt.Printf("Browser URL:\n%v\n\n", authURL)
	fmt.Print("Press Enter to open the browser...")
	authcode.WaitForEnter(os.Stdin)
	if conf.NoBrowser {
		fmt.Println("Open the URL above in your browser to continue.")
	} else if err := browser.OpenURL(authURL); err != nil {
		log.Fatalln("Unable to open browser:", err)
	}

	// Wait for user to paste the code back
	fmt.Print("Paste the authorization code (or the full redirect URL): ")
	code, err := authcode.Read(os.Stdin, authcode.DefaultTimeout)
	if err != nil {
		log.Fatalln(err)
	}

	// Exchange code for refresh token
	refreshToken, err := tokenexchange.ExchangeCode(creds, code)
	if err != nil {
		log.Fatalln(err)
	}

	// Confirm the refresh token works before saving it
	accessToken, err := tokenexchange.RedeemAccessToken(creds, refreshToken)
	if err != nil {
		log.Fatalln(err)
	}

	// Save refresh token file
	if err := tokenstore.Save(conf.RefreshTokenFile, refreshToken); err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("Saved refresh token to: %s\n", conf.RefreshTokenFile)

	// Show which channel was authorized
	if title, err := channelinfo.ChannelTitle(accessToken); err != nil {
		log.Warnln("Unable to look up channel:", err)
	} else {
		fmt.Printf("Authorized channel: %s\n", title)
	}

	// Send out alert
	if conf.Alerts.SnsTopicArn != "" {
		message := "Refresh token updated: " + conf.RefreshTokenFile
		if err := sendsns.SendSNS("YouTube Refresh Token Updated", message, conf.Alerts.SnsTopicArn); err != nil {
			log.Warnln("Unable to send SNS alert:", err)
		}
	}
}

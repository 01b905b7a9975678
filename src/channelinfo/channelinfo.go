package channelinfo

import (
	"errors"

	"golang.org/x/net/context"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// ChannelTitle looks up the channel behind the freshly minted access token so
// the user can confirm they authorized the right account.
func ChannelTitle(accessToken string) (string, error) {
	ctx := context.Background()
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})

	// Initialize service
	service, err := youtube.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return "", err
	}

	response, err := service.Channels.List([]string{"snippet"}).Mine(true).Do()
	if err != nil {
		return "", err
	}
	if len(response.Items) == 0 {
		return "", errors.New("no channel found for the authorized account")
	}
	return response.Items[0].Snippet.Title, nil
}

// utils/firebase.go
package utils

import (
	"context"
	"log"

	"courtside/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// AuthClient verifies Firebase ID tokens. Nil when no credentials are
// configured; the auth middleware then falls back to local HS256 tokens.
var AuthClient *auth.Client

// FirebaseInit initializes the Firebase App and Auth client.
func FirebaseInit() {
	credentials := config.AppConfig.FirebaseCredentials
	if credentials == "" {
		log.Println("firebase: no credentials configured, using local token verification")
		return
	}

	ctx := context.Background()
	opt := option.WithCredentialsFile(credentials)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	AuthClient = client
}

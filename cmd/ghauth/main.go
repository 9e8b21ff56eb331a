// Command ghauth is a small application shell around the sign-in library: it
// runs the browser-delegated flow against github.com, receiving the OAuth
// callback on a local HTTP listener.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"

	"github.com/ron-haley/go-github-auth/auth"
	"github.com/ron-haley/go-github-auth/callback"
	"github.com/ron-haley/go-github-auth/clients"
	"github.com/ron-haley/go-github-auth/internal/config"
	"github.com/ron-haley/go-github-auth/servers"
	"github.com/ron-haley/go-github-auth/transport"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error signing in: %s\n", err)
	}
}

func run() error {
	env := config.EnvVars{}
	displayAppname(env.GetAppName())

	broadcaster := callback.NewBroadcaster()
	service, err := auth.New(
		auth.Config{ClientID: env.GetClientID(), ClientSecret: env.GetClientSecret()},
		transport.NewHTTPRequester(),
		broadcaster,
	)
	if err != nil {
		return err
	}

	server := &http.Server{Addr: env.GetCallbackAddr(), Handler: callbackHandler(broadcaster)}
	go listenAndServe(server)
	defer shutdown(server)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	code, err := service.AuthorizeWithWebBrowser(ctx, servers.Dotcom(), clients.Scopes{clients.ScopeRepo, clients.ScopeUser})
	if err != nil {
		return err
	}

	token, err := service.ExchangeCode(ctx, servers.Dotcom(), code)
	if err != nil {
		return err
	}

	log.Printf("Signed in; token ends in %q\n", lastFour(token))
	return nil
}

// callbackHandler feeds every received callback URL into the broadcaster,
// where the pending sign-in picks it up by its state parameter.
func callbackHandler(broadcaster *callback.Broadcaster) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		broadcaster.Publish(r.URL)
		fmt.Fprintln(w, "Authorization received. You can close this window.")
	})
	return mux
}

func listenAndServe(server *http.Server) {
	log.Printf("Callback listener on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("Callback listener stopped: %s\n", err)
	}
}

func shutdown(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown: %s\n", err)
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

func lastFour(token string) string {
	if len(token) <= 4 {
		return token
	}
	return "…" + token[len(token)-4:]
}

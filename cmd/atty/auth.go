package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/atty-social/atty/client"

	"github.com/adrg/xdg"
	"github.com/urfave/cli/v2"
)

var ErrNoAuthSession = errors.New("no auth session found")

const sessionFile = "atty/auth-session.json"

var cmdLogin = &cli.Command{
	Name:  "login",
	Usage: "create session with PDS instance",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "username",
			Aliases:  []string{"u"},
			Required: true,
			Usage:    "account identifier (handle or DID)",
			EnvVars:  []string{"ATTY_USERNAME"},
		},
		&cli.StringFlag{
			Name:     "app-password",
			Aliases:  []string{"p"},
			Required: true,
			Usage:    "password (app password recommended)",
			EnvVars:  []string{"ATTY_PASSWORD"},
		},
		&cli.StringFlag{
			Name:    "pds-host",
			Usage:   "URL of the PDS to log in to",
			Value:   "https://bsky.social",
			EnvVars: []string{"ATTY_PDS_HOST"},
		},
	},
	Action: runLogin,
}

var cmdLogout = &cli.Command{
	Name:   "logout",
	Usage:  "delete any current session",
	Action: runLogout,
}

var cmdWhoami = &cli.Command{
	Name:   "whoami",
	Usage:  "print the account of the current session",
	Action: runWhoami,
}

func persistSession(sess *client.Session) error {

	fPath, err := xdg.StateFile(sessionFile)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(fPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	authBytes, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	_, err = f.Write(authBytes)
	return err
}

func readSession() (*client.Session, error) {
	fPath, err := xdg.SearchStateFile(sessionFile)
	if err != nil {
		return nil, ErrNoAuthSession
	}

	fBytes, err := os.ReadFile(fPath)
	if err != nil {
		return nil, err
	}

	var sess client.Session
	if err := json.Unmarshal(fBytes, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// loadSession reads the persisted session and refreshes it, so the access token is fresh for this invocation.
func loadSession(ctx context.Context, c *client.Client) (*client.Session, error) {
	sess, err := readSession()
	if err != nil {
		return nil, err
	}

	next, err := c.Refresh(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("session expired, log in again: %w", err)
	}
	if err := persistSession(next); err != nil {
		return nil, err
	}
	return next, nil
}

// authedClient is the common prelude of commands which act as the logged-in account.
func authedClient(cctx *cli.Context) (*client.Client, *client.Session, error) {
	c, err := configureClient(cctx)
	if err != nil {
		return nil, nil, err
	}
	sess, err := loadSession(cctx.Context, c)
	if errors.Is(err, ErrNoAuthSession) {
		return nil, nil, fmt.Errorf("auth required, but not logged in")
	} else if err != nil {
		return nil, nil, err
	}
	return c, sess, nil
}

func runLogin(cctx *cli.Context) error {
	c, err := configureClient(cctx)
	if err != nil {
		return err
	}

	sess, err := c.Login(cctx.Context, cctx.String("pds-host"), cctx.String("username"), cctx.String("app-password"))
	if err != nil {
		return err
	}
	if err := persistSession(sess); err != nil {
		return err
	}
	fmt.Printf("logged in as %s (%s)\n", sess.Handle, sess.DID)
	return nil
}

func runLogout(cctx *cli.Context) error {

	fPath, err := xdg.SearchStateFile(sessionFile)
	if err != nil {
		fmt.Println("no auth session found (already logged out)")
		return nil
	}
	return os.Remove(fPath)
}

func runWhoami(cctx *cli.Context) error {
	sess, err := readSession()
	if errors.Is(err, ErrNoAuthSession) {
		fmt.Println("not logged in")
		return nil
	} else if err != nil {
		return err
	}
	fmt.Printf("%s\t%s\t%s\n", sess.Handle, sess.DID, sess.Host)
	return nil
}

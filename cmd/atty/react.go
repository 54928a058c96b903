package main

import (
	"fmt"
	"strings"
	"time"

	comatproto "github.com/atty-social/atty/api/atproto"
	"github.com/atty-social/atty/atproto/syntax"
	"github.com/atty-social/atty/compose"

	"github.com/urfave/cli/v2"
)

var cmdLike = &cli.Command{
	Name:      "like",
	Usage:     "like a post",
	ArgsUsage: `<at-uri>`,
	Action:    runLike,
}

var cmdRepost = &cli.Command{
	Name:      "repost",
	Usage:     "repost a post",
	ArgsUsage: `<at-uri>`,
	Action:    runRepost,
}

var cmdFollow = &cli.Command{
	Name:      "follow",
	Usage:     "follow an account",
	ArgsUsage: `<handle-or-did>`,
	Action:    runFollow,
}

var cmdResolve = &cli.Command{
	Name:      "resolve",
	Usage:     "resolve a handle to a DID",
	ArgsUsage: `<handle>`,
	Action:    runResolve,
}

func runLike(cctx *cli.Context) error {
	uri := cctx.Args().First()
	if uri == "" {
		return fmt.Errorf("need to provide post URI as argument")
	}
	c, sess, err := authedClient(cctx)
	if err != nil {
		return err
	}
	subject, err := fetchAttributes(cctx, c, sess, uri)
	if err != nil {
		return err
	}
	like, err := compose.BuildLike(subject, time.Now())
	if err != nil {
		return err
	}
	ref, err := c.Like(cctx.Context, sess, like)
	if err != nil {
		return err
	}
	printRef(ref)
	return nil
}

func runRepost(cctx *cli.Context) error {
	uri := cctx.Args().First()
	if uri == "" {
		return fmt.Errorf("need to provide post URI as argument")
	}
	c, sess, err := authedClient(cctx)
	if err != nil {
		return err
	}
	subject, err := fetchAttributes(cctx, c, sess, uri)
	if err != nil {
		return err
	}
	repost, err := compose.BuildRepost(subject, time.Now())
	if err != nil {
		return err
	}
	ref, err := c.Repost(cctx.Context, sess, repost)
	if err != nil {
		return err
	}
	printRef(ref)
	return nil
}

func runFollow(cctx *cli.Context) error {
	raw := strings.TrimPrefix(cctx.Args().First(), "@")
	if raw == "" {
		return fmt.Errorf("need to provide handle or DID as argument")
	}
	atid, err := syntax.ParseAtIdentifier(raw)
	if err != nil {
		return err
	}

	c, sess, err := authedClient(cctx)
	if err != nil {
		return err
	}

	did, err := atid.AsDID()
	if err != nil {
		handle, _ := atid.AsHandle()
		did, err = c.ResolveHandle(cctx.Context, handle)
		if err != nil {
			return err
		}
	}

	follow, err := compose.BuildFollow(did, time.Now())
	if err != nil {
		return err
	}
	ref, err := c.Follow(cctx.Context, sess, follow)
	if err != nil {
		return err
	}
	printRef(ref)
	return nil
}

func runResolve(cctx *cli.Context) error {
	raw := strings.TrimPrefix(cctx.Args().First(), "@")
	if raw == "" {
		return fmt.Errorf("need to provide handle as argument")
	}
	handle, err := syntax.ParseHandle(raw)
	if err != nil {
		return err
	}
	c, err := configureClient(cctx)
	if err != nil {
		return err
	}
	did, err := c.ResolveHandle(cctx.Context, handle)
	if err != nil {
		return err
	}
	fmt.Println(did)
	return nil
}

func printRef(ref *comatproto.RepoStrongRef) {
	fmt.Printf("%s\t%s\n", ref.Uri, ref.Cid)
}

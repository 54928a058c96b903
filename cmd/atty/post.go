package main

import (
	"fmt"
	"time"

	"github.com/atty-social/atty/client"
	"github.com/atty-social/atty/compose"

	"github.com/urfave/cli/v2"
)

var langFlag = &cli.StringSliceFlag{
	Name:    "lang",
	Usage:   "language of the post text (repeatable), eg: en",
	EnvVars: []string{"ATTY_POST_LANGS"},
}

var cmdPost = &cli.Command{
	Name:      "post",
	Usage:     "create a post",
	ArgsUsage: `<text>`,
	Flags:     []cli.Flag{langFlag},
	Action:    runPost,
}

var cmdReply = &cli.Command{
	Name:      "reply",
	Usage:     "reply to a post",
	ArgsUsage: `<at-uri> <text>`,
	Flags:     []cli.Flag{langFlag},
	Action:    runReply,
}

var cmdQuote = &cli.Command{
	Name:      "quote",
	Usage:     "quote a post",
	ArgsUsage: `<at-uri> <text>`,
	Flags:     []cli.Flag{langFlag},
	Action:    runQuote,
}

func runPost(cctx *cli.Context) error {
	text := cctx.Args().First()
	if text == "" {
		return fmt.Errorf("need to provide post text as argument")
	}
	return sendPending(cctx, &compose.PendingPost{Text: text})
}

func runReply(cctx *cli.Context) error {
	uri, text := cctx.Args().Get(0), cctx.Args().Get(1)
	if uri == "" || text == "" {
		return fmt.Errorf("need to provide post URI and reply text as arguments")
	}

	c, sess, err := authedClient(cctx)
	if err != nil {
		return err
	}
	target, err := fetchAttributes(cctx, c, sess, uri)
	if err != nil {
		return err
	}
	return send(cctx, c, sess, &compose.PendingPost{Text: text, InReplyTo: target})
}

func runQuote(cctx *cli.Context) error {
	uri, text := cctx.Args().Get(0), cctx.Args().Get(1)
	if uri == "" {
		return fmt.Errorf("need to provide post URI as argument")
	}

	c, sess, err := authedClient(cctx)
	if err != nil {
		return err
	}
	quoted, err := fetchAttributes(cctx, c, sess, uri)
	if err != nil {
		return err
	}
	return send(cctx, c, sess, &compose.PendingPost{Text: text, Embed: quoted.StrongRef()})
}

func sendPending(cctx *cli.Context, pending *compose.PendingPost) error {
	c, sess, err := authedClient(cctx)
	if err != nil {
		return err
	}
	return send(cctx, c, sess, pending)
}

func send(cctx *cli.Context, c *client.Client, sess *client.Session, pending *compose.PendingPost) error {
	pending.Langs = cctx.StringSlice("lang")
	post, err := compose.BuildPost(cctx.Context, pending, c, time.Now())
	if err != nil {
		return err
	}
	ref, err := c.SendPost(cctx.Context, sess, post)
	if err != nil {
		return err
	}
	fmt.Printf("%s\t%s\n", ref.Uri, ref.Cid)
	return nil
}

// fetchAttributes hydrates a post URI into the uri/cid/record triple used for replies and reactions.
func fetchAttributes(cctx *cli.Context, c *client.Client, sess *client.Session, uri string) (*compose.GenericPostAttributes, error) {
	posts, err := c.FetchPosts(cctx.Context, sess, []string{uri})
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, fmt.Errorf("post not found: %s", uri)
	}
	post, ok := posts[0].FeedPost()
	if !ok {
		return nil, fmt.Errorf("not a post record: %s", uri)
	}
	return &compose.GenericPostAttributes{
		Uri:    posts[0].Uri,
		Cid:    posts[0].Cid,
		Record: post,
	}, nil
}

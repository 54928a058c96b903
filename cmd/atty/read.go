package main

import (
	"fmt"
	"os"
	"time"

	"github.com/atty-social/atty/notifs"
	"github.com/atty-social/atty/thread"

	"github.com/urfave/cli/v2"
)

// default page size for timeline, notifs and thread depth
const postLimit = 10

var cmdTimeline = &cli.Command{
	Name:  "timeline",
	Usage: "show the home timeline",
	Flags: []cli.Flag{
		&cli.Int64Flag{
			Name:  "limit",
			Value: postLimit,
		},
	},
	Action: runTimeline,
}

var cmdThread = &cli.Command{
	Name:      "thread",
	Usage:     "show a post and its ancestors, newest first",
	ArgsUsage: `<at-uri>`,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "depth",
			Usage: "max number of ancestors to fetch",
			Value: postLimit,
		},
	},
	Action: runThread,
}

var cmdNotifs = &cli.Command{
	Name:  "notifs",
	Usage: "show recent notifications",
	Flags: []cli.Flag{
		&cli.Int64Flag{
			Name:  "limit",
			Usage: "notifications to fetch (max 25, the most subjects one getPosts call accepts)",
			Value: postLimit,
		},
		&cli.BoolFlag{
			Name:  "dedupe-subjects",
			Usage: "fetch each liked or reposted post once, even if it appears in several notifications",
		},
	},
	Action: runNotifs,
}

func runTimeline(cctx *cli.Context) error {
	c, sess, err := authedClient(cctx)
	if err != nil {
		return err
	}
	feed, err := c.Timeline(cctx.Context, sess, cctx.Int64("limit"))
	if err != nil {
		return err
	}
	now := time.Now()
	for _, item := range feed {
		if item.Reason != nil && item.Reason.FeedDefs_ReasonRepost != nil {
			fmt.Fprintf(os.Stdout, "%s Reposted:\n", formatActor(item.Reason.FeedDefs_ReasonRepost.By))
		}
		fmt.Fprint(os.Stdout, formatPostView(item.Post, now))
	}
	return nil
}

func runThread(cctx *cli.Context) error {
	uri := cctx.Args().First()
	if uri == "" {
		return fmt.Errorf("need to provide post URI as argument")
	}
	c, sess, err := authedClient(cctx)
	if err != nil {
		return err
	}

	chain, err := thread.NewWalker(c).Walk(cctx.Context, sess, uri, cctx.Int("depth"))
	if err != nil {
		return err
	}
	if len(chain.Posts) == 0 {
		fmt.Printf("thread unavailable (%s)\n", chain.Stop)
		return nil
	}
	now := time.Now()
	for _, p := range chain.Posts {
		fmt.Fprint(os.Stdout, formatPostView(p, now))
	}
	if chain.Stop != thread.StopRoot {
		fmt.Printf("[earlier posts unavailable: %s]\n", chain.Stop)
	}
	return nil
}

func runNotifs(cctx *cli.Context) error {
	limit := cctx.Int64("limit")
	if limit <= 0 || limit > 25 {
		return fmt.Errorf("limit must be between 1 and 25")
	}

	c, sess, err := authedClient(cctx)
	if err != nil {
		return err
	}
	page, err := c.Notifications(cctx.Context, sess, limit)
	if err != nil {
		return err
	}

	d := notifs.NewDispatcher(c)
	d.DedupeSubjects = cctx.Bool("dedupe-subjects")
	events, err := d.Dispatch(cctx.Context, sess, page)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, formatEvents(events, time.Now()))
	return nil
}

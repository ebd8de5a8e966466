package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/serroba/linx/internal/client"
	"github.com/spf13/cobra"
)

// Options configures the command line client.
type Options struct {
	Server  string `default:"http://localhost:8888" help:"linx server base URL" short:"s"`
	Timeout int    `default:"10"                    help:"Request timeout in seconds"`
}

func newClient(opts *Options) *client.Client {
	return client.New(opts.Server, client.WithTimeout(time.Duration(opts.Timeout)*time.Second))
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, _ *Options) {
		hooks.OnStart(func() {
			fmt.Fprintln(os.Stderr, "usage: linx [shorten|resolve] --help")
		})
	})

	cli.Root().Use = "linx"
	cli.Root().Short = "Command line client for the linx URL shortener"

	cli.Root().AddCommand(&cobra.Command{
		Use:   "shorten <url> [code]",
		Short: "Create a short link, optionally with a custom code",
		Args:  cobra.RangeArgs(1, 2),
		Run: humacli.WithOptions(func(cmd *cobra.Command, args []string, opts *Options) {
			code := ""
			if len(args) == 2 {
				code = args[1]
			}

			link, err := newClient(opts).Shorten(context.Background(), args[0], code)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				os.Exit(1)
			}

			fmt.Fprintln(cmd.OutOrStdout(), link.ShortURL)
		}),
	})

	cli.Root().AddCommand(&cobra.Command{
		Use:   "resolve <code>",
		Short: "Print the URL a short code redirects to",
		Args:  cobra.ExactArgs(1),
		Run: humacli.WithOptions(func(cmd *cobra.Command, args []string, opts *Options) {
			url, err := newClient(opts).Resolve(context.Background(), args[0])
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				os.Exit(1)
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)
		}),
	})

	cli.Run()
}

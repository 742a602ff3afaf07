package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/gurl/packages/core/config"
	"github.com/abdul-hamid-achik/gurl/packages/core/request"
	gurlhttp "github.com/abdul-hamid-achik/gurl/packages/http"
	"github.com/abdul-hamid-achik/gurl/packages/output"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// defaultHeaders is the baseline header set attached to every outbound
// request. Built once per invocation and handed to the client
// constructor; never a mutable global.
func defaultHeaders() map[string]string {
	return map[string]string{
		"X-Powered-By": "gurl",
		"User-Agent":   "gurl/" + version,
		"X-Request-Id": uuid.New().String(),
	}
}

// executeAndRender is the shared tail of every request command:
// load config, build the client, perform the single round trip and
// render the response.
func executeAndRender(cmd *cobra.Command, desc request.Descriptor) error {
	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		return err
	}

	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	resp, err := client.Execute(cmd.Context(), desc)
	if err != nil {
		return err
	}

	renderer := output.NewConsoleRenderer(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithNoColor(noColorFlag || cfg.GetNoColor()),
	)
	return renderer.Render(resp)
}

func buildClient(cfg *config.Config) (*gurlhttp.Client, error) {
	headers := defaultHeaders()
	for k, v := range cfg.Headers {
		headers[k] = v
	}
	for _, raw := range headerFlags {
		name, value, err := parseHeaderFlag(raw)
		if err != nil {
			return nil, err
		}
		headers[name] = value
	}

	opts := []gurlhttp.ClientOption{
		gurlhttp.WithDefaultHeaders(headers),
		gurlhttp.WithFollowRedirects(cfg.GetFollowRedirects()),
	}

	if cfg.MaxRedirects > 0 {
		opts = append(opts, gurlhttp.WithMaxRedirects(cfg.MaxRedirects))
	}

	if timeoutFlag != "" {
		d, err := time.ParseDuration(timeoutFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", timeoutFlag, err)
		}
		opts = append(opts, gurlhttp.WithTimeout(d))
	} else if cfg.Timeout > 0 {
		opts = append(opts, gurlhttp.WithTimeout(time.Duration(cfg.Timeout)*time.Millisecond))
	}

	if insecureFlag || !cfg.GetValidateSSL() {
		opts = append(opts, gurlhttp.WithValidateSSL(false))
	}

	if proxyFlag != "" {
		opts = append(opts, gurlhttp.WithProxy(proxyFlag))
	} else if cfg.Proxy != "" {
		opts = append(opts, gurlhttp.WithProxy(cfg.Proxy))
	}

	return gurlhttp.NewClient(opts...), nil
}

// parseHeaderFlag splits a -H argument on the first ':'.
func parseHeaderFlag(raw string) (string, string, error) {
	name, value, found := strings.Cut(raw, ":")
	if !found || strings.TrimSpace(name) == "" {
		return "", "", fmt.Errorf("invalid header %q (expected name:value)", raw)
	}
	return strings.TrimSpace(name), strings.TrimSpace(value), nil
}

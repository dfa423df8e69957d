// Package cmd implements the CLI commands for shopctl.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/storekeeper-hq/shopify-rest/internal/config"
	"github.com/storekeeper-hq/shopify-rest/internal/logger"
	"github.com/storekeeper-hq/shopify-rest/pkg/httpclient"
	"github.com/storekeeper-hq/shopify-rest/pkg/shopify"
)

var (
	endpoint   string
	method     string
	paramsFile string
	pageToken  string
	limit      int
)

var rootCmd = &cobra.Command{
	Use:          "shopctl",
	Short:        "Issue a single Shopify admin REST API request",
	Long:         "Builds one authenticated request against the configured shop, executes it, and prints the decoded response body. Credentials and the shop address come from the environment (see internal/config).",
	RunE:         runRequest,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&endpoint, "endpoint", "", "API path appended to the shop address, e.g. /admin/api/2024-01/products.json")
	rootCmd.Flags().StringVar(&method, "method", "GET", "HTTP method (GET, POST, PUT, DELETE)")
	rootCmd.Flags().StringVar(&paramsFile, "params", "", "YAML file of request parameters")
	rootCmd.Flags().StringVar(&pageToken, "page-token", "", "pagination cursor from a previous response")
	rootCmd.Flags().IntVar(&limit, "limit", shopify.DefaultLimit, "result count cap, clamped to [50,250]")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command with the given base context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runRequest(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	if strings.TrimSpace(cfg.ShopAddress) == "" {
		return fmt.Errorf("shop_address is not configured")
	}
	if strings.TrimSpace(endpoint) == "" {
		return fmt.Errorf("--endpoint is required")
	}

	params, err := loadParams(paramsFile)
	if err != nil {
		return err
	}

	client := shopify.New(cfg.ShopAddress, shopify.Credentials{
		APIKey:    cfg.APIKey,
		APISecret: cfg.APISecret,
		APIToken:  cfg.APIToken,
	}, httpclient.NewRestyClient(cfg.HTTPTimeout))

	log.Debugw("issuing request", "method", method, "endpoint", endpoint, "params", len(params))

	resp, err := client.MakeRequest(cmd.Context(), endpoint, method, params, pageToken, limit)
	if err != nil {
		log.Errorw("request failed", "method", method, "endpoint", endpoint, "error", err)
		return err
	}

	return printBody(resp)
}

// loadParams reads request parameters from a YAML file of key/value scalars.
func loadParams(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read params file: %w", err)
	}
	var params map[string]any
	if err := yaml.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("decode params file: %w", err)
	}
	return params, nil
}

// printBody writes the decoded body to stdout: indented JSON when the body
// decoded, the raw text when it did not.
func printBody(resp *shopify.ParsedResponse) error {
	if s, ok := resp.Body.(string); ok {
		fmt.Println(s)
		return nil
	}
	out, err := json.MarshalIndent(resp.Body, "", "  ")
	if err != nil {
		return fmt.Errorf("render response body: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

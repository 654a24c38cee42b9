package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"

	"github.com/fivetwenty-io/paykit/internal/audit"
	"github.com/fivetwenty-io/paykit/internal/client"
	"github.com/fivetwenty-io/paykit/internal/constants"
	"github.com/fivetwenty-io/paykit/pkg/paykit"
)

// session owns the resources that live for one command invocation.
type session struct {
	logger    *stderrLogger
	auditConn *audit.Connection
}

// Close flushes audit events. Failures are reported but do not fail the command.
func (s *session) Close() {
	if s.auditConn == nil {
		return
	}

	err := s.auditConn.Close()
	if err != nil && s.logger != nil {
		s.logger.Warn("closing audit connection", map[string]interface{}{"error": err.Error()})
	}
}

// buildOptions maps the merged flag/env/file settings onto paykit.Options.
func buildOptions(cmd *cobra.Command, apiKeySetting string) (*paykit.Options, *session, error) {
	sess := &session{}

	opts := &paykit.Options{
		APIKey:  viper.GetString(apiKeySetting),
		BaseURL: viper.GetString("base_url"),
		Timeout: viper.GetDuration("timeout"),
		Casing:  paykit.CasingPolicy(viper.GetString("casing")),
	}

	if viper.GetBool("verbose") {
		sess.logger = newStderrLogger(cmd.ErrOrStderr())
		opts.Logger = sess.logger
		opts.Debug = true
	}

	if perSecond := viper.GetFloat64("rate_limit"); perSecond > 0 {
		opts.Interceptors = paykit.NewInterceptorChain()
		opts.Interceptors.AddRequestInterceptor(paykit.RateLimitInterceptor(rate.NewLimiter(rate.Limit(perSecond), 1)))
	}

	natsURL := viper.GetString("audit_nats_url")
	if natsURL == "" {
		return opts, sess, nil
	}

	conn, err := audit.Connect(natsURL)
	if err != nil {
		return nil, nil, err
	}

	auditor, err := audit.NewAuditor(conn, viper.GetString("audit_subject"))
	if err != nil {
		_ = conn.Close()

		return nil, nil, fmt.Errorf("failed to create auditor: %w", err)
	}

	sess.auditConn = conn

	if opts.Interceptors == nil {
		opts.Interceptors = paykit.NewInterceptorChain()
	}

	opts.Interceptors.AddResponseInterceptor(auditor.ResponseInterceptor())

	return opts, sess, nil
}

// newProjectClient builds a tenant client from the CLI settings.
func newProjectClient(cmd *cobra.Command) (*client.Client, *session, error) {
	opts, sess, err := buildOptions(cmd, "api_key")
	if err != nil {
		return nil, nil, err
	}

	config, err := paykit.NewConfiguration(paykit.ScopeProject, opts, os.LookupEnv)
	if err != nil {
		sess.Close()

		return nil, nil, fmt.Errorf("%w (set it with 'paykit config set-key' or %s_API_KEY)", err, constants.EnvPrefix)
	}

	projectClient, err := client.New(config, opts)
	if err != nil {
		sess.Close()

		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	return projectClient, sess, nil
}

// newOrganizationClient builds an organization-admin client from the CLI settings.
func newOrganizationClient(cmd *cobra.Command) (*client.OrganizationClient, *session, error) {
	opts, sess, err := buildOptions(cmd, "org_api_key")
	if err != nil {
		return nil, nil, err
	}

	config, err := paykit.NewConfiguration(paykit.ScopeOrganization, opts, os.LookupEnv)
	if err != nil {
		sess.Close()

		return nil, nil, fmt.Errorf("%w (set it with 'paykit config set-key --org' or %s_ORG_API_KEY)", err, constants.EnvPrefix)
	}

	orgClient, err := client.NewOrganization(config, opts)
	if err != nil {
		sess.Close()

		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	return orgClient, sess, nil
}

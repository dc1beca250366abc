// Package cfn builds the CloudFormation client used by the collector.
//
// The client retries throttled and transient failures in the SDK's adaptive
// mode and bounds its HTTP connection pool, so a worker pool of N lookups
// never opens more than N connections to the endpoint.
package cfn

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"

	"github.com/matzehuels/cycl/pkg/buildinfo"
	"github.com/matzehuels/cycl/pkg/errors"
)

const (
	// DefaultMaxAttempts bounds SDK retries per API call.
	DefaultMaxAttempts = 10

	// DefaultMaxConnections bounds connections per host.
	DefaultMaxConnections = 10

	httpTimeout = 30 * time.Second
)

// Options configures NewClient.
type Options struct {
	Region         string // Empty uses the AWS config chain
	Profile        string // Empty uses the default profile
	MaxAttempts    int    // Zero means DefaultMaxAttempts
	MaxConnections int    // Zero means DefaultMaxConnections
}

// WithDefaults returns a copy of o with zero fields set to their defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.MaxConnections <= 0 {
		opts.MaxConnections = DefaultMaxConnections
	}
	return opts
}

// NewClient loads the AWS configuration and returns a CloudFormation client.
// Configuration problems such as an unknown profile are reported as
// INVALID_CONFIG errors.
func NewClient(ctx context.Context, opts Options) (*cloudformation.Client, error) {
	cfg, err := LoadConfig(ctx, opts)
	if err != nil {
		return nil, err
	}
	return cloudformation.NewFromConfig(cfg), nil
}

// LoadConfig resolves the AWS configuration for opts.
func LoadConfig(ctx context.Context, opts Options) (aws.Config, error) {
	opts = opts.WithDefaults()

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(retry.NewAdaptiveMode(), opts.MaxAttempts)
		}),
		awsconfig.WithHTTPClient(newHTTPClient(opts.MaxConnections)),
		awsconfig.WithAppID(buildinfo.AppID()),
	}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load aws config")
	}
	return cfg, nil
}

func newHTTPClient(maxConns int) *awshttp.BuildableClient {
	return awshttp.NewBuildableClient().
		WithTimeout(httpTimeout).
		WithTransportOptions(func(tr *http.Transport) {
			tr.MaxConnsPerHost = maxConns
			tr.MaxIdleConnsPerHost = maxConns
		})
}

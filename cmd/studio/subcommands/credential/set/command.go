package set

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/opst/synthstudio/api-types/providers"
	srest "github.com/opst/synthstudio/cmd/studio/rest"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_CREDENTIAL = "KEY=VALUE"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Set credentials.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_CREDENTIAL, Required: true, Repeatable: true,
				Help: "credential to be set, like OPENAI_API_KEY=sk-...",
			},
		},
		common.NewTask(Task),
		flarc.WithDescription(fmt.Sprintf(`
Set credentials in the backend.

Known keys are: %s
`, strings.Join(providers.CredentialKeys, ", "))),
	)
}

var ErrTokenExpired = errors.New("token is expired")

// Parse reads KEY=VALUE pairs.
func Parse(args []string) (map[string]string, error) {
	creds := map[string]string{}
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || v == "" {
			return nil, fmt.Errorf("%w: credential should be KEY=VALUE: %s", flarc.ErrUsage, k)
		}
		if !providers.IsCredentialKey(k) {
			return nil, fmt.Errorf("%w: unknown credential key: %s", flarc.ErrUsage, k)
		}
		creds[k] = v
	}
	return creds, nil
}

// CheckExpiry reads the expiry of a CDP token without verifying its signature.
//
// It returns ErrTokenExpired for tokens expired at now.
// Tokens not in JWT form, or without exp, are passed.
func CheckExpiry(token string, now time.Time) error {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	if !now.Before(claims.ExpiresAt.Time) {
		return fmt.Errorf("%w: at %s", ErrTokenExpired, claims.ExpiresAt.Time.Format(time.RFC3339))
	}
	return nil
}

func Task(
	ctx context.Context,
	logger *log.Logger,
	_ common.Session,
	client srest.StudioClient,
	cl flarc.Commandline[struct{}],
	_ []any,
) error {
	creds, err := Parse(cl.Args()[ARG_CREDENTIAL])
	if err != nil {
		return err
	}
	if token, ok := creds["CDP_TOKEN"]; ok {
		if err := CheckExpiry(token, time.Now()); err != nil {
			logger.Printf("WARNING: CDP_TOKEN: %s", err)
		}
	}

	result, err := client.SetCredentials(ctx, creds)
	if err != nil {
		return err
	}
	logger.Printf("%d credentials are updated, %d are new", result.Updated, result.New)

	enc := json.NewEncoder(cl.Stdout())
	enc.SetIndent("", "    ")
	if err := enc.Encode(result); err != nil {
		logger.Panicf("fail to dump the result")
	}
	return nil
}

package set_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/opst/synthstudio/api-types/providers"
	"github.com/opst/synthstudio/cmd/studio/rest/mock"
	"github.com/opst/synthstudio/cmd/studio/subcommands/common"
	"github.com/opst/synthstudio/cmd/studio/subcommands/credential/set"
	"github.com/opst/synthstudio/cmd/studio/subcommands/internal/commandline"
	"github.com/opst/synthstudio/cmd/studio/subcommands/logger"
	"github.com/youta-t/flarc"
)

func token(t *testing.T, exp *time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: "alice"}
	if exp != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*exp)
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestParse(t *testing.T) {
	t.Run("KEY=VALUE pairs are read", func(t *testing.T) {
		creds, err := set.Parse([]string{"OPENAI_API_KEY=sk-1=2", "AWS_REGION=us-east-1"})
		if err != nil {
			t.Fatal(err)
		}
		if creds["OPENAI_API_KEY"] != "sk-1=2" || creds["AWS_REGION"] != "us-east-1" || len(creds) != 2 {
			t.Errorf("unexpected credentials: %v", creds)
		}
	})

	for name, args := range map[string][]string{
		"without value":    {"OPENAI_API_KEY="},
		"without equal":    {"OPENAI_API_KEY"},
		"with unknown key": {"HF_TOKEN=hf_x"},
	} {
		t.Run("it is usage error "+name, func(t *testing.T) {
			if _, err := set.Parse(args); !errors.Is(err, flarc.ErrUsage) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCheckExpiry(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	for name, testcase := range map[string]struct {
		token    string
		expected error
	}{
		"expired token":      {token: token(t, &past), expected: set.ErrTokenExpired},
		"token expiring now": {token: token(t, &now), expected: set.ErrTokenExpired},
		"live token":         {token: token(t, &future), expected: nil},
		"token without exp":  {token: token(t, nil), expected: nil},
		"opaque token":       {token: "not-a-jwt", expected: nil},
	} {
		t.Run(name, func(t *testing.T) {
			err := set.CheckExpiry(testcase.token, now)
			if testcase.expected == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, testcase.expected) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestTask(t *testing.T) {
	t.Run("credentials are sent, even with an expired token", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		expired := token(t, &past)

		client := mock.New(t)
		client.Impl.SetCredentials = func(_ context.Context, creds map[string]string) (providers.SetCredentialsResult, error) {
			return providers.SetCredentialsResult{Updated: 1, New: 1}, nil
		}

		stdout := new(strings.Builder)
		err := set.Task(
			context.Background(), logger.Null(), common.Session{}, client,
			commandline.MockCommandline[struct{}]{
				Stdout_: stdout,
				Args_: map[string][]string{
					set.ARG_CREDENTIAL: {"CDP_TOKEN=" + expired, "OPENAI_API_KEY=sk-1"},
				},
			},
			nil,
		)
		if err != nil {
			t.Fatal(err)
		}
		if len(client.Calls.SetCredentials) != 1 {
			t.Fatalf("SetCredentials is called %d times", len(client.Calls.SetCredentials))
		}
		if sent := client.Calls.SetCredentials[0]; sent["CDP_TOKEN"] != expired || sent["OPENAI_API_KEY"] != "sk-1" {
			t.Errorf("unexpected credentials are sent: %v", sent)
		}

		result := providers.SetCredentialsResult{}
		if err := json.Unmarshal([]byte(stdout.String()), &result); err != nil {
			t.Fatal(err)
		}
		if result != (providers.SetCredentialsResult{Updated: 1, New: 1}) {
			t.Errorf("unexpected output: %+v", result)
		}
	})

	t.Run("malformed arguments are not sent", func(t *testing.T) {
		client := mock.New(t)
		err := set.Task(
			context.Background(), logger.Null(), common.Session{}, client,
			commandline.MockCommandline[struct{}]{
				Stdout_: new(strings.Builder),
				Args_:   map[string][]string{set.ARG_CREDENTIAL: {"OPENAI_API_KEY"}},
			},
			nil,
		)
		if !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("unexpected error: %v", err)
		}
		if len(client.Calls.SetCredentials) != 0 {
			t.Errorf("SetCredentials is called")
		}
	})
}

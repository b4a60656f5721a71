/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/mapper/internal/digittrie"
	"dirpx.dev/dstatus/status"
	"github.com/BurntSushi/toml"
	"google.golang.org/grpc/codes"
)

// Config is the TOML form of a set of mapper rules.
//
//	[Fallback]
//	HTTP = 500
//	GRPC = "INTERNAL"
//
//	[[Default]]
//	Code = "10111"
//	HTTP = 409
//	GRPC = "ALREADY_EXISTS"
//
//	[[Override]]
//	Code = "10001"
//	HTTP = 422
//
//	[[Prefix]]
//	Pattern = "1013"
//	HTTP = 401
//	GRPC = "UNAUTHENTICATED"
//
// In every entry HTTP = 0 and GRPC = "" mean "leave this transport alone".
type Config struct {
	Fallback *Fallback
	Default  []Rule
	Override []Rule
	Prefix   []PrefixRule
}

// Fallback replaces the statuses used when nothing else matched.
type Fallback struct {
	HTTP int
	GRPC string
}

// Rule binds transport statuses to one status code. Code is required: a
// missing key would otherwise decode to status.OK.
type Rule struct {
	Code *status.StatusCode
	HTTP int
	GRPC string
}

// PrefixRule binds transport statuses to a digit pattern, e.g. "1011" or
// "101*1".
type PrefixRule struct {
	Pattern string
	HTTP    int
	GRPC    string
}

// Load parses and validates the provided buffer b as a mapper config.
func Load(b []byte) (*Config, error) {
	if b == nil {
		return nil, errors.New("mapper: no nil buffer as config")
	}
	cfg := new(Config)
	md, err := toml.Decode(string(b), cfg)
	if err != nil {
		return nil, fmt.Errorf("mapper: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, fmt.Errorf("mapper: undecoded keys in config: %v", undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads, parses and validates the provided file.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(b)
}

// Validate checks every entry of the config.
func (c *Config) Validate() error {
	if c.Fallback != nil {
		if err := checkTransport("Fallback", c.Fallback.HTTP, c.Fallback.GRPC); err != nil {
			return err
		}
	}
	for i, r := range c.Default {
		if err := r.check(fmt.Sprintf("Default[%d]", i)); err != nil {
			return err
		}
	}
	for i, r := range c.Override {
		if err := r.check(fmt.Sprintf("Override[%d]", i)); err != nil {
			return err
		}
	}
	for i, r := range c.Prefix {
		where := fmt.Sprintf("Prefix[%d]", i)
		if !digittrie.ValidPattern(r.Pattern) {
			return fmt.Errorf("mapper: %s: invalid pattern %q", where, r.Pattern)
		}
		if err := checkRule(where, r.HTTP, r.GRPC); err != nil {
			return err
		}
	}
	return nil
}

// Options converts the config into mapper options, in file order:
// defaults, overrides, prefixes, fallback.
func (c *Config) Options() ([]Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var opts []Option
	for _, r := range c.Default {
		if r.HTTP != 0 {
			opts = append(opts, WithHTTPDefault(*r.Code, r.HTTP))
		}
		if r.GRPC != "" {
			g, _ := ParseGRPCName(r.GRPC)
			opts = append(opts, WithGRPCDefault(*r.Code, g))
		}
	}
	for _, r := range c.Override {
		if r.HTTP != 0 {
			opts = append(opts, WithHTTPOverride(*r.Code, r.HTTP))
		}
		if r.GRPC != "" {
			g, _ := ParseGRPCName(r.GRPC)
			opts = append(opts, WithGRPCOverride(*r.Code, g))
		}
	}
	for _, r := range c.Prefix {
		if r.HTTP != 0 {
			opts = append(opts, WithHTTPPrefix(r.Pattern, r.HTTP))
		}
		if r.GRPC != "" {
			g, _ := ParseGRPCName(r.GRPC)
			opts = append(opts, WithGRPCPrefix(r.Pattern, g))
		}
	}
	if c.Fallback != nil {
		h, g := http.StatusInternalServerError, codes.Internal
		if c.Fallback.HTTP != 0 {
			h = c.Fallback.HTTP
		}
		if c.Fallback.GRPC != "" {
			g, _ = ParseGRPCName(c.Fallback.GRPC)
		}
		opts = append(opts, WithFallback(h, g))
	}
	return opts, nil
}

// NewFromConfig is New(cfg.Options()..., extra...).
func NewFromConfig(cfg *Config, extra ...Option) (apis.Mapper, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(append(opts, extra...)...)
}

func (r Rule) check(where string) error {
	if r.Code == nil {
		return fmt.Errorf("mapper: %s: Code is not set", where)
	}
	return checkRule(where, r.HTTP, r.GRPC)
}

func checkRule(where string, httpStatus int, grpcName string) error {
	if httpStatus == 0 && grpcName == "" {
		return fmt.Errorf("mapper: %s: neither HTTP nor GRPC is set", where)
	}
	return checkTransport(where, httpStatus, grpcName)
}

func checkTransport(where string, httpStatus int, grpcName string) error {
	if httpStatus != 0 {
		if err := validateHTTP(where, httpStatus); err != nil {
			return err
		}
	}
	if grpcName != "" {
		if _, err := ParseGRPCName(grpcName); err != nil {
			return fmt.Errorf("mapper: %s: unknown gRPC code %q", where, grpcName)
		}
	}
	return nil
}

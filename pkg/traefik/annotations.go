// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package traefik

import (
	"strconv"
	"strings"
)

// Annotation keys consumed by the Traefik ingress controller. These strings
// are the wire contract with the cluster and must not change.
const (
	// IngressClassKey marks an ingress as handled by Traefik.
	IngressClassKey = "kubernetes.io/ingress.class"
	// IngressClassValue is the fixed ingress class for k3s' bundled Traefik.
	IngressClassValue = "traefik"

	entryPointsKey    = "traefik.ingress.kubernetes.io/router.entrypoints"
	middlewaresKey    = "traefik.ingress.kubernetes.io/router.middlewares"
	certResolverKey   = "traefik.ingress.kubernetes.io/router.tls.certresolver"
	tlsKey            = "traefik.ingress.kubernetes.io/router.tls"
	priorityKey       = "traefik.ingress.kubernetes.io/router.priority"
	stickyKey         = "traefik.ingress.kubernetes.io/service.sticky.cookie"
	stickyNameKey     = "traefik.ingress.kubernetes.io/service.sticky.cookie.name"
	passHostHeaderKey = "traefik.ingress.kubernetes.io/service.passhostheader"

	// stickyCookieName is the fixed cookie name used for session affinity.
	stickyCookieName = "traefik_sticky"
)

// Config is the structured form of the Traefik router/service configuration
// carried on an ingress via annotations. All fields are optional; a nil
// pointer or empty slice means the field is not set and its annotation is
// never emitted.
type Config struct {
	// EntryPoints lists the named listeners the router binds to (e.g., "web",
	// "websecure").
	EntryPoints []string `json:"entryPoints,omitempty" yaml:"entryPoints,omitempty"`
	// Middlewares lists middleware references applied to the router, in order.
	Middlewares []string `json:"middlewares,omitempty" yaml:"middlewares,omitempty"`
	// CertResolver names the certificate resolver used to issue TLS
	// certificates for the router. Setting it also enables TLS on the router.
	CertResolver *string `json:"certResolver,omitempty" yaml:"certResolver,omitempty"`
	// Priority sets the router matching priority; higher wins ties.
	Priority *int `json:"priority,omitempty" yaml:"priority,omitempty"`
	// Sticky enables cookie-based session affinity on the backing service.
	Sticky *bool `json:"sticky,omitempty" yaml:"sticky,omitempty"`
	// PassHostHeader controls whether the original Host header is forwarded
	// to the backend. Unlike Sticky, an explicit false is encoded.
	PassHostHeader *bool `json:"passHostHeader,omitempty" yaml:"passHostHeader,omitempty"`
}

// Empty reports whether no field of the config is set.
func (c *Config) Empty() bool {
	if c == nil {
		return true
	}
	return len(c.EntryPoints) == 0 &&
		len(c.Middlewares) == 0 &&
		c.CertResolver == nil &&
		c.Priority == nil &&
		c.Sticky == nil &&
		c.PassHostHeader == nil
}

// Encode builds the complete annotation map for an ingress from the
// structured config and any caller-supplied annotations. User annotations are
// merged first, derived Traefik keys overlay them, and the ingress class key
// is applied last so it always wins.
//
// Sticky is only encoded when true; PassHostHeader is encoded for both true
// and false. This asymmetry is part of the annotation contract.
func Encode(cfg *Config, userAnnotations map[string]string) map[string]string {
	annotations := make(map[string]string, len(userAnnotations)+8)
	for k, v := range userAnnotations {
		annotations[k] = v
	}

	if cfg != nil {
		if len(cfg.EntryPoints) > 0 {
			annotations[entryPointsKey] = strings.Join(cfg.EntryPoints, ",")
		}
		if len(cfg.Middlewares) > 0 {
			annotations[middlewaresKey] = strings.Join(cfg.Middlewares, ",")
		}
		if cfg.CertResolver != nil {
			annotations[certResolverKey] = *cfg.CertResolver
			annotations[tlsKey] = "true"
		}
		if cfg.Priority != nil {
			annotations[priorityKey] = strconv.Itoa(*cfg.Priority)
		}
		if cfg.Sticky != nil && *cfg.Sticky {
			annotations[stickyKey] = "true"
			annotations[stickyNameKey] = stickyCookieName
		}
		if cfg.PassHostHeader != nil {
			annotations[passHostHeaderKey] = strconv.FormatBool(*cfg.PassHostHeader)
		}
	}

	annotations[IngressClassKey] = IngressClassValue

	return annotations
}

// Decode recovers the structured config from an ingress annotation map.
// It returns nil when annotations is nil or when no Traefik key is present,
// so an all-absent config never decodes to an empty-but-present object.
//
// The router.tls flag written alongside CertResolver is not read back; it is
// implied by the resolver. An unparsable priority value leaves the field
// unset rather than failing the decode.
func Decode(annotations map[string]string) *Config {
	if annotations == nil {
		return nil
	}

	cfg := &Config{}

	if v, ok := annotations[entryPointsKey]; ok {
		cfg.EntryPoints = strings.Split(v, ",")
	}
	if v, ok := annotations[middlewaresKey]; ok {
		cfg.Middlewares = strings.Split(v, ",")
	}
	if v, ok := annotations[certResolverKey]; ok {
		resolver := v
		cfg.CertResolver = &resolver
	}
	if v, ok := annotations[priorityKey]; ok {
		if priority, err := strconv.Atoi(v); err == nil {
			cfg.Priority = &priority
		}
	}
	if v, ok := annotations[stickyKey]; ok && v == "true" {
		sticky := true
		cfg.Sticky = &sticky
	}
	if v, ok := annotations[passHostHeaderKey]; ok {
		pass := v == "true"
		cfg.PassHostHeader = &pass
	}

	if cfg.Empty() {
		return nil
	}
	return cfg
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"
)

func TestEncodeNilConfig(t *testing.T) {
	got := Encode(nil, nil)

	assert.Equal(t, map[string]string{
		IngressClassKey: IngressClassValue,
	}, got)
}

func TestEncodeMergesUserAnnotations(t *testing.T) {
	user := map[string]string{
		"app.kubernetes.io/managed-by": "k3sgate",
	}

	got := Encode(nil, user)

	assert.Equal(t, "k3sgate", got["app.kubernetes.io/managed-by"])
	assert.Equal(t, IngressClassValue, got[IngressClassKey])

	// input map is never mutated
	assert.NotContains(t, user, IngressClassKey)
}

func TestEncodeIngressClassNotOverridable(t *testing.T) {
	user := map[string]string{
		IngressClassKey: "nginx",
	}

	got := Encode(nil, user)

	assert.Equal(t, IngressClassValue, got[IngressClassKey])
}

func TestEncodeIdempotent(t *testing.T) {
	cfg := &Config{
		EntryPoints: []string{"web", "websecure"},
		Priority:    ptr.To(42),
	}
	user := map[string]string{"k": "v"}

	first := Encode(cfg, user)
	second := Encode(cfg, user)

	assert.Equal(t, first, second)
}

func TestEncodeCertResolverEnablesTLS(t *testing.T) {
	got := Encode(&Config{CertResolver: ptr.To("letsencrypt")}, nil)

	assert.Equal(t, "letsencrypt", got["traefik.ingress.kubernetes.io/router.tls.certresolver"])
	assert.Equal(t, "true", got["traefik.ingress.kubernetes.io/router.tls"])
}

func TestEncodeStickyFalseOmitted(t *testing.T) {
	got := Encode(&Config{Sticky: ptr.To(false)}, nil)

	assert.NotContains(t, got, "traefik.ingress.kubernetes.io/service.sticky.cookie")
	assert.NotContains(t, got, "traefik.ingress.kubernetes.io/service.sticky.cookie.name")

	// decoding that output leaves sticky unset, not false
	assert.Nil(t, Decode(got))
}

func TestEncodePassHostHeaderFalse(t *testing.T) {
	got := Encode(&Config{PassHostHeader: ptr.To(false)}, nil)

	assert.Equal(t, "false", got["traefik.ingress.kubernetes.io/service.passhostheader"])

	decoded := Decode(got)
	require.NotNil(t, decoded)
	require.NotNil(t, decoded.PassHostHeader)
	assert.False(t, *decoded.PassHostHeader)
}

func TestEncodeFull(t *testing.T) {
	cfg := &Config{
		EntryPoints:    []string{"websecure"},
		CertResolver:   ptr.To("letsencrypt"),
		Priority:       ptr.To(100),
		Sticky:         ptr.To(true),
		PassHostHeader: ptr.To(true),
	}

	got := Encode(cfg, map[string]string{})

	assert.Equal(t, map[string]string{
		"kubernetes.io/ingress.class":                              "traefik",
		"traefik.ingress.kubernetes.io/router.entrypoints":         "websecure",
		"traefik.ingress.kubernetes.io/router.tls.certresolver":    "letsencrypt",
		"traefik.ingress.kubernetes.io/router.tls":                 "true",
		"traefik.ingress.kubernetes.io/router.priority":            "100",
		"traefik.ingress.kubernetes.io/service.sticky.cookie":      "true",
		"traefik.ingress.kubernetes.io/service.sticky.cookie.name": "traefik_sticky",
		"traefik.ingress.kubernetes.io/service.passhostheader":     "true",
	}, got)
}

func TestDecodeNil(t *testing.T) {
	assert.Nil(t, Decode(nil))
}

func TestDecodeNoTraefikKeys(t *testing.T) {
	// ingress class alone does not constitute a config
	got := Decode(map[string]string{
		IngressClassKey: IngressClassValue,
		"unrelated":     "value",
	})

	assert.Nil(t, got)
}

func TestDecodePresenceInvariant(t *testing.T) {
	// an all-unset config encodes to class-only annotations, which must
	// decode back to absent
	assert.Nil(t, Decode(Encode(&Config{}, nil)))
}

func TestDecodeEntryPointsRoundTrip(t *testing.T) {
	cfg := &Config{EntryPoints: []string{"web", "websecure"}}

	got := Decode(Encode(cfg, map[string]string{}))

	require.NotNil(t, got)
	assert.Equal(t, []string{"web", "websecure"}, got.EntryPoints)
}

func TestDecodeMiddlewaresLiteralSplit(t *testing.T) {
	got := Decode(map[string]string{
		"traefik.ingress.kubernetes.io/router.middlewares": "default-auth@kubernetescrd, default-compress@kubernetescrd",
	})

	require.NotNil(t, got)
	// no whitespace trimming around entries
	assert.Equal(t, []string{"default-auth@kubernetescrd", " default-compress@kubernetescrd"}, got.Middlewares)
}

func TestDecodePriority(t *testing.T) {
	got := Decode(map[string]string{
		"traefik.ingress.kubernetes.io/router.priority": "100",
	})

	require.NotNil(t, got)
	require.NotNil(t, got.Priority)
	assert.Equal(t, 100, *got.Priority)
}

func TestDecodePriorityNotNumeric(t *testing.T) {
	got := Decode(map[string]string{
		"traefik.ingress.kubernetes.io/router.priority": "highest",
	})

	// unparsable priority is treated as absent; nothing else set, so the
	// whole config is absent
	assert.Nil(t, got)
}

func TestDecodeStickyRequiresExactTrue(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "false", value: "false"},
		{name: "capitalized", value: "True"},
		{name: "numeric", value: "1"},
		{name: "empty", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(map[string]string{
				"traefik.ingress.kubernetes.io/service.sticky.cookie": tt.value,
			})
			assert.Nil(t, got)
		})
	}
}

func TestDecodeSticky(t *testing.T) {
	got := Decode(Encode(&Config{Sticky: ptr.To(true)}, nil))

	require.NotNil(t, got)
	require.NotNil(t, got.Sticky)
	assert.True(t, *got.Sticky)
}

func TestDecodeTLSFlagWriteOnly(t *testing.T) {
	// router.tls alone does not decode into anything
	got := Decode(map[string]string{
		"traefik.ingress.kubernetes.io/router.tls": "true",
	})
	assert.Nil(t, got)

	// with a resolver, only the resolver comes back
	got = Decode(Encode(&Config{CertResolver: ptr.To("letsencrypt")}, nil))
	require.NotNil(t, got)
	require.NotNil(t, got.CertResolver)
	assert.Equal(t, "letsencrypt", *got.CertResolver)
}

func TestConfigEmpty(t *testing.T) {
	var nilCfg *Config
	assert.True(t, nilCfg.Empty())
	assert.True(t, (&Config{}).Empty())
	assert.False(t, (&Config{EntryPoints: []string{"web"}}).Empty())
	assert.False(t, (&Config{PassHostHeader: ptr.To(false)}).Empty())
}

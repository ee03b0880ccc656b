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

package cluster

import (
	"context"
	"fmt"

	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	apperrors "github.com/k3sgate/k3sgate/pkg/errors"
	"github.com/k3sgate/k3sgate/pkg/traefik"
)

// ListIngresses returns the simplified ingresses in a namespace.
func (c *Client) ListIngresses(ctx context.Context, namespace string) ([]Ingress, error) {
	list, err := c.ClientSet.NetworkingV1().Ingresses(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list ingresses in %q: %w", namespace, err)
	}

	ingresses := make([]Ingress, 0, len(list.Items))
	for i := range list.Items {
		ingresses = append(ingresses, toIngress(&list.Items[i]))
	}
	return ingresses, nil
}

// GetIngress returns a single simplified ingress.
func (c *Client) GetIngress(ctx context.Context, namespace, name string) (*Ingress, error) {
	ing, err := c.ClientSet.NetworkingV1().Ingresses(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ingress %q: %w", name, err)
	}

	i := toIngress(ing)
	return &i, nil
}

// CreateIngress creates an ingress from the simplified spec. The structured
// Traefik configuration and any raw annotations are encoded into the
// resource's metadata annotations.
func (c *Client) CreateIngress(ctx context.Context, namespace string, spec *IngressSpec) (*Ingress, error) {
	if err := validateIngressSpec(spec); err != nil {
		return nil, err
	}

	ing, err := c.ClientSet.NetworkingV1().Ingresses(namespace).Create(ctx, buildIngress(spec), metav1.CreateOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create ingress %q: %w", spec.Name, err)
	}

	i := toIngress(ing)
	return &i, nil
}

// UpdateIngress replaces the rules, TLS blocks, labels, and annotations of
// an existing ingress. Annotations are fully re-encoded from the spec, so an
// update with no Traefik config clears previously set Traefik keys.
func (c *Client) UpdateIngress(ctx context.Context, namespace, name string, spec *IngressSpec) (*Ingress, error) {
	if err := validateIngressSpec(spec); err != nil {
		return nil, err
	}

	existing, err := c.ClientSet.NetworkingV1().Ingresses(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ingress %q: %w", name, err)
	}

	desired := buildIngress(spec)
	existing.Labels = desired.Labels
	existing.Annotations = desired.Annotations
	existing.Spec = desired.Spec

	updated, err := c.ClientSet.NetworkingV1().Ingresses(namespace).Update(ctx, existing, metav1.UpdateOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to update ingress %q: %w", name, err)
	}

	i := toIngress(updated)
	return &i, nil
}

// DeleteIngress removes an ingress.
func (c *Client) DeleteIngress(ctx context.Context, namespace, name string) error {
	if err := c.ClientSet.NetworkingV1().Ingresses(namespace).Delete(ctx, name, metav1.DeleteOptions{}); err != nil {
		return fmt.Errorf("failed to delete ingress %q: %w", name, err)
	}
	return nil
}

func validateIngressSpec(spec *IngressSpec) error {
	if err := validateName(spec.Name); err != nil {
		return err
	}

	if len(spec.Rules) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "ingress requires at least one rule")
	}

	for _, rule := range spec.Rules {
		if len(rule.Paths) == 0 {
			return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				"ingress rule requires at least one path", map[string]any{"host": rule.Host})
		}
		for _, path := range rule.Paths {
			if path.Service == "" {
				return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
					"ingress path requires a backend service", map[string]any{"path": path.Path})
			}
			if path.Port < 1 || path.Port > 65535 {
				return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
					"ingress backend port out of range", map[string]any{"port": path.Port})
			}
			switch path.PathType {
			case "", string(networkingv1.PathTypePrefix), string(networkingv1.PathTypeExact),
				string(networkingv1.PathTypeImplementationSpecific):
			default:
				return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
					"invalid path type", map[string]any{"pathType": path.PathType})
			}
		}
	}

	return nil
}

func buildIngress(spec *IngressSpec) *networkingv1.Ingress {
	rules := make([]networkingv1.IngressRule, 0, len(spec.Rules))
	for _, rule := range spec.Rules {
		paths := make([]networkingv1.HTTPIngressPath, 0, len(rule.Paths))
		for _, p := range rule.Paths {
			pathType := networkingv1.PathTypePrefix
			if p.PathType != "" {
				pathType = networkingv1.PathType(p.PathType)
			}

			path := p.Path
			if path == "" {
				path = "/"
			}

			paths = append(paths, networkingv1.HTTPIngressPath{
				Path:     path,
				PathType: &pathType,
				Backend: networkingv1.IngressBackend{
					Service: &networkingv1.IngressServiceBackend{
						Name: p.Service,
						Port: networkingv1.ServiceBackendPort{Number: p.Port},
					},
				},
			})
		}

		rules = append(rules, networkingv1.IngressRule{
			Host: rule.Host,
			IngressRuleValue: networkingv1.IngressRuleValue{
				HTTP: &networkingv1.HTTPIngressRuleValue{Paths: paths},
			},
		})
	}

	tls := make([]networkingv1.IngressTLS, 0, len(spec.TLS))
	for _, t := range spec.TLS {
		tls = append(tls, networkingv1.IngressTLS{
			SecretName: t.SecretName,
			Hosts:      t.Hosts,
		})
	}

	return &networkingv1.Ingress{
		ObjectMeta: metav1.ObjectMeta{
			Name:        spec.Name,
			Labels:      spec.Labels,
			Annotations: traefik.Encode(spec.Traefik, spec.Annotations),
		},
		Spec: networkingv1.IngressSpec{
			Rules: rules,
			TLS:   tls,
		},
	}
}

func toIngress(ing *networkingv1.Ingress) Ingress {
	out := Ingress{
		Name:        ing.Name,
		Namespace:   ing.Namespace,
		Annotations: ing.Annotations,
		Traefik:     traefik.Decode(ing.Annotations),
		CreatedAt:   ing.CreationTimestamp.Time,
	}

	if ing.Spec.IngressClassName != nil {
		out.ClassName = *ing.Spec.IngressClassName
	} else if class, ok := ing.Annotations[traefik.IngressClassKey]; ok {
		out.ClassName = class
	}

	out.Rules = make([]IngressRule, 0, len(ing.Spec.Rules))
	out.Hosts = make([]string, 0, len(ing.Spec.Rules))
	for _, rule := range ing.Spec.Rules {
		if rule.Host != "" {
			out.Hosts = append(out.Hosts, rule.Host)
		}

		r := IngressRule{Host: rule.Host}
		if rule.HTTP != nil {
			r.Paths = make([]IngressPath, 0, len(rule.HTTP.Paths))
			for _, p := range rule.HTTP.Paths {
				path := IngressPath{Path: p.Path}
				if p.PathType != nil {
					path.PathType = string(*p.PathType)
				}
				if p.Backend.Service != nil {
					path.Service = p.Backend.Service.Name
					path.Port = p.Backend.Service.Port.Number
				}
				r.Paths = append(r.Paths, path)
			}
		}
		out.Rules = append(out.Rules, r)
	}

	for _, t := range ing.Spec.TLS {
		out.TLS = append(out.TLS, IngressTLS{SecretName: t.SecretName, Hosts: t.Hosts})
	}

	for _, lb := range ing.Status.LoadBalancer.Ingress {
		if lb.IP != "" {
			out.Addresses = append(out.Addresses, lb.IP)
		}
		if lb.Hostname != "" {
			out.Addresses = append(out.Addresses, lb.Hostname)
		}
	}

	return out
}

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

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	apperrors "github.com/k3sgate/k3sgate/pkg/errors"
)

// ListServices returns the simplified services in a namespace.
func (c *Client) ListServices(ctx context.Context, namespace string) ([]Service, error) {
	list, err := c.ClientSet.CoreV1().Services(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list services in %q: %w", namespace, err)
	}

	services := make([]Service, 0, len(list.Items))
	for i := range list.Items {
		services = append(services, toService(&list.Items[i]))
	}
	return services, nil
}

// GetService returns a single simplified service.
func (c *Client) GetService(ctx context.Context, namespace, name string) (*Service, error) {
	svc, err := c.ClientSet.CoreV1().Services(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get service %q: %w", name, err)
	}

	s := toService(svc)
	return &s, nil
}

// CreateService creates a service from the simplified spec.
func (c *Client) CreateService(ctx context.Context, namespace string, spec *ServiceSpec) (*Service, error) {
	if err := validateServiceSpec(spec); err != nil {
		return nil, err
	}

	svc, err := c.ClientSet.CoreV1().Services(namespace).Create(ctx, buildService(spec), metav1.CreateOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create service %q: %w", spec.Name, err)
	}

	s := toService(svc)
	return &s, nil
}

// UpdateService replaces the spec of an existing service, preserving the
// cluster-assigned fields (ClusterIP, resource version) the API requires on
// update.
func (c *Client) UpdateService(ctx context.Context, namespace, name string, spec *ServiceSpec) (*Service, error) {
	if err := validateServiceSpec(spec); err != nil {
		return nil, err
	}

	existing, err := c.ClientSet.CoreV1().Services(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get service %q: %w", name, err)
	}

	desired := buildService(spec)
	existing.Labels = desired.Labels
	existing.Spec.Type = desired.Spec.Type
	existing.Spec.Selector = desired.Spec.Selector
	existing.Spec.Ports = desired.Spec.Ports

	updated, err := c.ClientSet.CoreV1().Services(namespace).Update(ctx, existing, metav1.UpdateOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to update service %q: %w", name, err)
	}

	s := toService(updated)
	return &s, nil
}

// DeleteService removes a service.
func (c *Client) DeleteService(ctx context.Context, namespace, name string) error {
	if err := c.ClientSet.CoreV1().Services(namespace).Delete(ctx, name, metav1.DeleteOptions{}); err != nil {
		return fmt.Errorf("failed to delete service %q: %w", name, err)
	}
	return nil
}

func validateServiceSpec(spec *ServiceSpec) error {
	if err := validateName(spec.Name); err != nil {
		return err
	}

	if len(spec.Ports) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "service requires at least one port")
	}

	switch spec.Type {
	case "", string(corev1.ServiceTypeClusterIP), string(corev1.ServiceTypeNodePort), string(corev1.ServiceTypeLoadBalancer):
	default:
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid service type", map[string]any{"type": spec.Type})
	}

	for _, port := range spec.Ports {
		if port.Port < 1 || port.Port > 65535 {
			return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				"service port out of range", map[string]any{"port": port.Port})
		}
	}

	return nil
}

func buildService(spec *ServiceSpec) *corev1.Service {
	svcType := corev1.ServiceTypeClusterIP
	if spec.Type != "" {
		svcType = corev1.ServiceType(spec.Type)
	}

	ports := make([]corev1.ServicePort, 0, len(spec.Ports))
	for _, p := range spec.Ports {
		protocol := corev1.ProtocolTCP
		if p.Protocol != "" {
			protocol = corev1.Protocol(p.Protocol)
		}

		target := p.TargetPort
		if target == 0 {
			target = p.Port
		}

		ports = append(ports, corev1.ServicePort{
			Name:       p.Name,
			Port:       p.Port,
			TargetPort: intstr.FromInt32(target),
			NodePort:   p.NodePort,
			Protocol:   protocol,
		})
	}

	return &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:   spec.Name,
			Labels: spec.Labels,
		},
		Spec: corev1.ServiceSpec{
			Type:     svcType,
			Selector: spec.Selector,
			Ports:    ports,
		},
	}
}

func toService(svc *corev1.Service) Service {
	ports := make([]ServicePort, 0, len(svc.Spec.Ports))
	for _, p := range svc.Spec.Ports {
		ports = append(ports, ServicePort{
			Name:       p.Name,
			Port:       p.Port,
			TargetPort: p.TargetPort.IntVal,
			NodePort:   p.NodePort,
			Protocol:   string(p.Protocol),
		})
	}

	return Service{
		Name:      svc.Name,
		Namespace: svc.Namespace,
		Type:      string(svc.Spec.Type),
		ClusterIP: svc.Spec.ClusterIP,
		Ports:     ports,
		Selector:  svc.Spec.Selector,
		CreatedAt: svc.CreationTimestamp.Time,
	}
}

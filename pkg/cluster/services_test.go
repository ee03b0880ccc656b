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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	apperrors "github.com/k3sgate/k3sgate/pkg/errors"
)

func TestCreateService(t *testing.T) {
	c := newTestClient()

	svc, err := c.CreateService(t.Context(), testNamespace, &ServiceSpec{
		Name:     "web",
		Selector: map[string]string{"app": "web"},
		Ports:    []ServicePort{{Port: 80}},
	})

	require.NoError(t, err)
	assert.Equal(t, "web", svc.Name)
	assert.Equal(t, "ClusterIP", svc.Type)
	require.Len(t, svc.Ports, 1)
	// target port defaults to port
	assert.Equal(t, int32(80), svc.Ports[0].TargetPort)
	assert.Equal(t, "TCP", svc.Ports[0].Protocol)
}

func TestCreateServiceNodePort(t *testing.T) {
	c := newTestClient()

	svc, err := c.CreateService(t.Context(), testNamespace, &ServiceSpec{
		Name: "web",
		Type: "NodePort",
		Ports: []ServicePort{
			{Name: "http", Port: 80, TargetPort: 8080, NodePort: 30080},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "NodePort", svc.Type)
	assert.Equal(t, int32(8080), svc.Ports[0].TargetPort)
	assert.Equal(t, int32(30080), svc.Ports[0].NodePort)
}

func TestCreateServiceInvalid(t *testing.T) {
	c := newTestClient()

	tests := []struct {
		name string
		spec *ServiceSpec
	}{
		{name: "no ports", spec: &ServiceSpec{Name: "web"}},
		{name: "bad type", spec: &ServiceSpec{Name: "web", Type: "ExternalMagic", Ports: []ServicePort{{Port: 80}}}},
		{name: "port out of range", spec: &ServiceSpec{Name: "web", Ports: []ServicePort{{Port: 0}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.CreateService(t.Context(), testNamespace, tt.spec)

			require.Error(t, err)
			var structured *apperrors.StructuredError
			require.True(t, errors.As(err, &structured))
			assert.Equal(t, apperrors.ErrCodeInvalidRequest, structured.Code)
		})
	}
}

func TestGetService(t *testing.T) {
	existing := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: testNamespace},
		Spec: corev1.ServiceSpec{
			Type:      corev1.ServiceTypeClusterIP,
			ClusterIP: "10.43.0.5",
			Selector:  map[string]string{"app": "web"},
			Ports: []corev1.ServicePort{
				{Port: 80, TargetPort: intstr.FromInt32(8080), Protocol: corev1.ProtocolTCP},
			},
		},
	}
	c := newTestClient(existing)

	svc, err := c.GetService(t.Context(), testNamespace, "web")

	require.NoError(t, err)
	assert.Equal(t, "10.43.0.5", svc.ClusterIP)
	assert.Equal(t, map[string]string{"app": "web"}, svc.Selector)
	require.Len(t, svc.Ports, 1)
	assert.Equal(t, int32(8080), svc.Ports[0].TargetPort)
}

func TestListServices(t *testing.T) {
	c := newTestClient(
		&corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "a", Namespace: testNamespace}},
		&corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "b", Namespace: "other"}},
	)

	services, err := c.ListServices(t.Context(), testNamespace)

	require.NoError(t, err)
	assert.Len(t, services, 1)
}

func TestUpdateServicePreservesClusterIP(t *testing.T) {
	existing := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: testNamespace},
		Spec: corev1.ServiceSpec{
			Type:      corev1.ServiceTypeClusterIP,
			ClusterIP: "10.43.0.5",
			Ports:     []corev1.ServicePort{{Port: 80, TargetPort: intstr.FromInt32(80)}},
		},
	}
	c := newTestClient(existing)

	svc, err := c.UpdateService(t.Context(), testNamespace, "web", &ServiceSpec{
		Name:  "web",
		Ports: []ServicePort{{Port: 8080}},
	})

	require.NoError(t, err)
	assert.Equal(t, "10.43.0.5", svc.ClusterIP)
	require.Len(t, svc.Ports, 1)
	assert.Equal(t, int32(8080), svc.Ports[0].Port)
}

func TestDeleteService(t *testing.T) {
	existing := &corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: testNamespace}}
	c := newTestClient(existing)

	require.NoError(t, c.DeleteService(t.Context(), testNamespace, "web"))

	_, err := c.ClientSet.CoreV1().Services(testNamespace).Get(t.Context(), "web", metav1.GetOptions{})
	assert.True(t, apierrors.IsNotFound(err))
}

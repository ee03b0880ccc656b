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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestListNamespaces(t *testing.T) {
	c := newTestClient(
		&corev1.Namespace{
			ObjectMeta: metav1.ObjectMeta{Name: "default"},
			Status:     corev1.NamespaceStatus{Phase: corev1.NamespaceActive},
		},
		&corev1.Namespace{
			ObjectMeta: metav1.ObjectMeta{Name: "kube-system"},
			Status:     corev1.NamespaceStatus{Phase: corev1.NamespaceActive},
		},
	)

	namespaces, err := c.ListNamespaces(t.Context())

	require.NoError(t, err)
	require.Len(t, namespaces, 2)

	names := []string{namespaces[0].Name, namespaces[1].Name}
	assert.ElementsMatch(t, []string{"default", "kube-system"}, names)
	assert.Equal(t, "Active", namespaces[0].Status)
}

func TestListNamespacesEmpty(t *testing.T) {
	c := newTestClient()

	namespaces, err := c.ListNamespaces(t.Context())

	require.NoError(t, err)
	assert.Empty(t, namespaces)
}

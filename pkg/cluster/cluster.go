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
	"k8s.io/apimachinery/pkg/util/validation"
	"k8s.io/client-go/kubernetes"

	apperrors "github.com/k3sgate/k3sgate/pkg/errors"
)

// Client translates simplified resource operations into cluster API calls.
// It is safe for concurrent use; all state is the underlying clientset.
type Client struct {
	// ClientSet is the Kubernetes client interface (exported for testing
	// with fake clientsets).
	ClientSet kubernetes.Interface
}

// New creates a cluster client backed by the given clientset.
func New(clientset kubernetes.Interface) *Client {
	return &Client{ClientSet: clientset}
}

// validateName enforces the RFC 1123 subdomain shape the cluster requires
// for resource names.
func validateName(name string) error {
	if name == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "resource name is required")
	}

	if errs := validation.IsDNS1123Subdomain(name); len(errs) > 0 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid resource name", map[string]any{"name": name, "reason": errs[0]})
	}

	return nil
}

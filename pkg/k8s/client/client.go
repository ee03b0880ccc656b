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

package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"

	apperrors "github.com/k3sgate/k3sgate/pkg/errors"
)

// Interface is an alias for kubernetes.Interface to allow easier mocking in tests.
// This enables using fake.NewSimpleClientset() which returns kubernetes.Interface.
type Interface = kubernetes.Interface

// Build creates a Kubernetes client from the given kubeconfig file. The
// returned client is owned by the caller; construct it once at startup and
// pass it to the components that need it.
//
// Parameters:
//   - kubeconfig: Path to kubeconfig file. If empty, uses automatic discovery:
//     1. KUBECONFIG environment variable
//     2. ~/.kube/config (if it exists)
//     3. In-cluster configuration (service account)
//
// Returns the client, the rest configuration used to create it, and any
// error encountered.
func Build(kubeconfig string) (Interface, *rest.Config, error) {
	var config *rest.Config
	var err error

	if kubeconfig == "" {
		kubeconfig = os.Getenv("KUBECONFIG")

		if kubeconfig == "" {
			kubeconfig = filepath.Join(homedir.HomeDir(), ".kube", "config")
			if _, err = os.Stat(kubeconfig); os.IsNotExist(err) {
				kubeconfig = ""
			}
		}
	}

	// Use InClusterConfig directly when no kubeconfig is available
	// This avoids the warning: "Neither --kubeconfig nor --master was specified"
	if kubeconfig == "" {
		config, err = rest.InClusterConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
	} else {
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build kube config from %s: %w", kubeconfig, err)
		}
	}

	client, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return client, config, nil
}

// Verify checks connectivity to the cluster control plane by requesting the
// server version through the discovery endpoint. It returns nil when the
// control plane answered, and a structured error otherwise. Callers bound
// the call through ctx.
func Verify(ctx context.Context, client Interface) error {
	// Check if context is canceled
	if err := ctx.Err(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeTimeout,
			"cluster connectivity check timed out", err)
	}

	type versionResult struct {
		version string
		err     error
	}

	// The discovery client does not take a context, so run it under one.
	done := make(chan versionResult, 1)
	go func() {
		info, err := client.Discovery().ServerVersion()
		if err != nil {
			done <- versionResult{err: err}
			return
		}
		done <- versionResult{version: info.GitVersion}
	}()

	select {
	case <-ctx.Done():
		return apperrors.Wrap(apperrors.ErrCodeTimeout,
			"cluster connectivity check timed out", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return apperrors.Wrap(apperrors.ErrCodeUnavailable,
				"cluster control plane unreachable", res.err)
		}
	}

	return nil
}

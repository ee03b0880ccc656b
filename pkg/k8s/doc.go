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

// Package k8s provides Kubernetes integration for k3sgate.
//
// The client sub-package builds the cluster client from a kubeconfig path
// or in-cluster credentials and verifies connectivity to the control plane:
//
//	clientset, config, err := client.Build(cfg.Kubeconfig)
//	if err != nil {
//	    return err
//	}
//	if err := client.Verify(ctx, clientset); err != nil {
//	    return err
//	}
//
// The client is constructed once at startup and passed explicitly to the
// components that need it; there is no package-level singleton.
package k8s

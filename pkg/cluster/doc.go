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

// Package cluster translates simplified REST resource operations into
// Kubernetes API calls and maps the cluster objects back into the reduced
// shapes exposed by the API.
//
// Supported resources: pods, services, and ingresses (full CRUD), and
// namespaces (list only). Ingress operations carry structured Traefik
// controller configuration through the pkg/traefik annotation codec.
//
// Cluster API errors are wrapped but not translated; the HTTP layer maps
// them to status codes with the apimachinery error predicates.
package cluster

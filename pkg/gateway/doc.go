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

// Package gateway exposes cluster operations as versioned REST routes.
//
// Each handler derives a deadline-bound context, delegates to the cluster
// client, and renders the result as JSON or YAML depending on the request
// Accept header. Kubernetes API errors are translated to HTTP statuses
// (404, 409, 403, 400, 504) with a structured error body.
package gateway

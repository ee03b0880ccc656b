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
	"time"

	"github.com/k3sgate/k3sgate/pkg/traefik"
)

// Simplified resource shapes exposed by the REST API. These are
// deliberately narrower than the raw Kubernetes objects.

// PodSpec is the client-submitted shape for creating or updating a pod.
type PodSpec struct {
	Name          string            `json:"name" yaml:"name"`
	Image         string            `json:"image" yaml:"image"`
	Command       []string          `json:"command,omitempty" yaml:"command,omitempty"`
	Args          []string          `json:"args,omitempty" yaml:"args,omitempty"`
	Env           map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
	Ports         []int32           `json:"ports,omitempty" yaml:"ports,omitempty"`
	Labels        map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	RestartPolicy string            `json:"restartPolicy,omitempty" yaml:"restartPolicy,omitempty"`
}

// Pod is the simplified pod representation returned by the API.
type Pod struct {
	Name      string            `json:"name" yaml:"name"`
	Namespace string            `json:"namespace" yaml:"namespace"`
	Phase     string            `json:"phase" yaml:"phase"`
	Ready     bool              `json:"ready" yaml:"ready"`
	Restarts  int32             `json:"restarts" yaml:"restarts"`
	PodIP     string            `json:"podIP,omitempty" yaml:"podIP,omitempty"`
	Node      string            `json:"node,omitempty" yaml:"node,omitempty"`
	Images    []string          `json:"images" yaml:"images"`
	Labels    map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	CreatedAt time.Time         `json:"createdAt" yaml:"createdAt"`
}

// ServicePort describes a single exposed service port.
type ServicePort struct {
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Port       int32  `json:"port" yaml:"port"`
	TargetPort int32  `json:"targetPort,omitempty" yaml:"targetPort,omitempty"`
	NodePort   int32  `json:"nodePort,omitempty" yaml:"nodePort,omitempty"`
	Protocol   string `json:"protocol,omitempty" yaml:"protocol,omitempty"`
}

// ServiceSpec is the client-submitted shape for creating or updating a service.
type ServiceSpec struct {
	Name     string            `json:"name" yaml:"name"`
	Type     string            `json:"type,omitempty" yaml:"type,omitempty"`
	Selector map[string]string `json:"selector,omitempty" yaml:"selector,omitempty"`
	Ports    []ServicePort     `json:"ports" yaml:"ports"`
	Labels   map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// Service is the simplified service representation returned by the API.
type Service struct {
	Name      string            `json:"name" yaml:"name"`
	Namespace string            `json:"namespace" yaml:"namespace"`
	Type      string            `json:"type" yaml:"type"`
	ClusterIP string            `json:"clusterIP,omitempty" yaml:"clusterIP,omitempty"`
	Ports     []ServicePort     `json:"ports" yaml:"ports"`
	Selector  map[string]string `json:"selector,omitempty" yaml:"selector,omitempty"`
	CreatedAt time.Time         `json:"createdAt" yaml:"createdAt"`
}

// IngressPath routes one URL path to a backend service port.
type IngressPath struct {
	Path     string `json:"path" yaml:"path"`
	PathType string `json:"pathType,omitempty" yaml:"pathType,omitempty"`
	Service  string `json:"service" yaml:"service"`
	Port     int32  `json:"port" yaml:"port"`
}

// IngressRule groups the paths served for one host.
type IngressRule struct {
	Host  string        `json:"host,omitempty" yaml:"host,omitempty"`
	Paths []IngressPath `json:"paths" yaml:"paths"`
}

// IngressTLS references a TLS secret and the hosts it covers.
type IngressTLS struct {
	SecretName string   `json:"secretName,omitempty" yaml:"secretName,omitempty"`
	Hosts      []string `json:"hosts,omitempty" yaml:"hosts,omitempty"`
}

// IngressSpec is the client-submitted shape for creating or updating an
// ingress. Traefik carries the structured controller configuration that is
// encoded into annotations alongside any raw Annotations the client sends.
type IngressSpec struct {
	Name        string            `json:"name" yaml:"name"`
	Rules       []IngressRule     `json:"rules" yaml:"rules"`
	TLS         []IngressTLS      `json:"tls,omitempty" yaml:"tls,omitempty"`
	Labels      map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Traefik     *traefik.Config   `json:"traefik,omitempty" yaml:"traefik,omitempty"`
}

// Ingress is the simplified ingress representation returned by the API.
// Traefik is decoded from the resource annotations when present.
type Ingress struct {
	Name        string            `json:"name" yaml:"name"`
	Namespace   string            `json:"namespace" yaml:"namespace"`
	ClassName   string            `json:"className,omitempty" yaml:"className,omitempty"`
	Hosts       []string          `json:"hosts" yaml:"hosts"`
	Rules       []IngressRule     `json:"rules" yaml:"rules"`
	TLS         []IngressTLS      `json:"tls,omitempty" yaml:"tls,omitempty"`
	Addresses   []string          `json:"addresses,omitempty" yaml:"addresses,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Traefik     *traefik.Config   `json:"traefik,omitempty" yaml:"traefik,omitempty"`
	CreatedAt   time.Time         `json:"createdAt" yaml:"createdAt"`
}

// Namespace is the simplified namespace representation returned by the API.
type Namespace struct {
	Name      string    `json:"name" yaml:"name"`
	Status    string    `json:"status" yaml:"status"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

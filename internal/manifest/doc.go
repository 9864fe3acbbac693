// Package manifest provides the YAML element manifest: the annotation
// definitions and per-pass element batches that a host build hands to the
// generator.
//
// # Schema Overview
//
//	version: "1"
//	annotations:
//	  - name: com.example.AutoConfig
//	    annotations: [org.springframework.context.annotation.Configuration]
//	passes:
//	  - elements:
//	      - name: com.example.AppConfig
//	        kind: class
//	        annotations: com.example.AutoConfig   # string or list
//	      - name: com.example.UserClient
//	        kind: interface
//	        annotations:
//	          - org.springframework.cloud.openfeign.FeignClient
//
// Annotation definitions default to kind "annotation". Elements default
// to kind "class". Usages that name no definition are leaves.
package manifest

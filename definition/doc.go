// Package definition loads declarative form definitions from YAML, JSON or
// HCL and builds them into a [formvalidation.FormSchema].
//
//	fields:
//	  - key: email
//	    label: Email
//	    serialize: [trim, lower]
//	    rules:
//	      - {type: required, message: Required}
//	      - {type: email, message: Bad email}
package definition

// Package schema loads model declarations from YAML and builds form.Record
// graphs from plain data.
//
// # Schema Overview
//
//	version: "1"
//	date_format: "2006-01-02 15:04:05"   # default storage layout for every model
//	models:
//	  - name: post
//	    casts:
//	      published_at: datetime
//	      publish_on: "date:2006-01-02"
//	      status: enum
//	    dates: [archived_at]              # legacy date keys
//	    relations:
//	      author: user                     # relation key -> model name
//	      comments: comment
//	  - name: user
//	  - name: comment
//
// # Building records
//
// Build walks plain data (as decoded from YAML or JSON) for a model. Keys
// declared as relations become loaded relations:
//   - a mapping builds a related record of the target model
//   - a list builds a []any of related records
//   - null loads the relation as nil
//
// Relation keys absent from the data stay unloaded. Every other key is a raw
// attribute.
package schema

// Package config provides configuration parsing for dashml tools.
//
// The configuration is stored in dashml.json. Every field is optional;
// missing fields take their defaults.
//
// # Configuration File Structure
//
//	{
//	  "render": {
//	    "pretty": true,
//	    "indent": "  "
//	  },
//	  "serve": {
//	    "host": "localhost",
//	    "port": 8080,
//	    "doctype": true
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "dashml"
//	  },
//	  "tracing": {
//	    "enabled": false,
//	    "tracerName": "github.com/vango-dev/dashml"
//	  },
//	  "bench": {
//	    "iterations": 100000
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config

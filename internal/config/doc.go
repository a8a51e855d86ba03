// Package config provides configuration parsing for the jsx tools.
//
// The configuration is stored in jsx.json or jsx.yaml at the project root.
// YAML files may reference environment variables as ${NAME}.
//
// # Configuration File Structure
//
//	{
//	  "logLevel": "info",
//	  "output": {
//	    "format": "json",
//	    "indent": true,
//	    "dir": "out"
//	  },
//	  "serve": {
//	    "host": "localhost",
//	    "port": 8787,
//	    "maxBodyBytes": 1048576,
//	    "shutdownTimeout": "10s"
//	  },
//	  "lint": {
//	    "failOnDeprecated": true,
//	    "ignore": ["key"]
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "jsx"
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
//	fmt.Println("Listening on", cfg.Serve.Addr())
package config

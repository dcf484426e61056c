// Package hcl provides the HCL implementation of descriptor loading and
// encoding. It parses one or more .hcl files into a descriptor.Descriptor,
// evaluating `flutter.*` variables along the way, and writes a descriptor
// back out as canonical HCL.
//
// A descriptor file looks like:
//
//	plugin "com.android.application" {}
//
//	android {
//	  namespace   = "com.example.app"
//	  compile_sdk = 35
//
//	  default_config {
//	    application_id = "com.example.app"
//	    min_sdk        = 23
//	    target_sdk     = 34
//	    version_code   = flutter.version_code
//	    version_name   = flutter.version_name
//	  }
//
//	  build_type "release" {
//	    signing_config = "debug"
//	  }
//	}
//
//	dependencies {
//	  dependency "implementation" "com.google.firebase:firebase-bom:34.5.0" {
//	    platform = true
//	  }
//	  dependency "implementation" "com.google.firebase:firebase-auth" {}
//	}
package hcl

package descriptor

// sampleDescriptor mirrors the Flutter AI assistant app's Android build.
func sampleDescriptor() *Descriptor {
	d := New()
	d.Plugins = []*Plugin{
		{ID: "com.android.application", Apply: true},
		{ID: "kotlin-android", Apply: true},
		{ID: "com.google.gms.google-services", Apply: true},
		{ID: "dev.flutter.flutter-gradle-plugin", Apply: true},
	}
	d.Identity = Identity{
		Namespace:     "com.example.ai_assistant_app",
		ApplicationID: "com.example.ai_assistant_app",
		VersionCode:   1,
		VersionName:   "1.0.0",
	}
	d.Toolchain = Toolchain{
		CompileSDK:          35,
		MinSDK:              23,
		TargetSDK:           34,
		NDKVersion:          "29.0.14206865",
		SourceCompatibility: "VERSION_11",
		TargetCompatibility: "VERSION_11",
		JVMTarget:           "11",
	}
	d.SigningConfigs[DebugSigningConfig] = DefaultDebugSigningConfig()
	d.BuildTypes["release"] = &BuildType{Name: "release", SigningConfig: DebugSigningConfig}
	d.Flutter = &Flutter{Source: "../.."}
	d.Dependencies = DependencySet{
		{Configuration: "implementation", Coordinate: Coordinate{Group: "com.google.firebase", Artifact: "firebase-bom", Version: "34.5.0"}, Platform: true, Enabled: true},
		{Configuration: "implementation", Coordinate: Coordinate{Group: "com.google.firebase", Artifact: "firebase-analytics"}, Enabled: true},
		{Configuration: "implementation", Coordinate: Coordinate{Group: "com.google.firebase", Artifact: "firebase-auth"}, Enabled: true},
		{Configuration: "implementation", Coordinate: Coordinate{Group: "com.google.firebase", Artifact: "firebase-firestore"}, Enabled: true},
		{Configuration: "implementation", Coordinate: Coordinate{Group: "com.google.firebase", Artifact: "firebase-storage"}, Enabled: false},
		{Configuration: "implementation", Coordinate: Coordinate{Group: "com.google.firebase", Artifact: "firebase-messaging"}, Enabled: false},
	}
	return d
}

// composeDependencies is the Jetpack Compose BoM setup, whose artifacts live
// in groups nested under the BoM's group.
func composeDependencies() []*Dependency {
	return []*Dependency{
		{Configuration: "implementation", Coordinate: Coordinate{Group: "androidx.compose", Artifact: "compose-bom", Version: "2024.01.00"}, Platform: true, Enabled: true},
		{Configuration: "implementation", Coordinate: Coordinate{Group: "androidx.compose.ui", Artifact: "ui"}, Enabled: true},
		{Configuration: "implementation", Coordinate: Coordinate{Group: "androidx.compose.material3", Artifact: "material3"}, Enabled: true},
	}
}

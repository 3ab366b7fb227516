package proving

import "testing"

func TestNew_NilOptionsUsesDefaults(t *testing.T) {
	cfg := New(nil)
	opts := cfg.Options()
	if opts.SetupCacheSize != defaultSetupCacheSize {
		t.Fatalf("SetupCacheSize got=%d want=%d", opts.SetupCacheSize, defaultSetupCacheSize)
	}
	if opts.OutputDir != defaultOutputDir {
		t.Fatalf("OutputDir got=%s want=%s", opts.OutputDir, defaultOutputDir)
	}
	if opts.EnableGnarkLogs != defaultEnableGnarkLogs {
		t.Fatalf("EnableGnarkLogs got=%v want=%v", opts.EnableGnarkLogs, defaultEnableGnarkLogs)
	}
}

func TestNew_UserOptionsOverrideDefaults(t *testing.T) {
	cfg := New(&ProvingOptions{
		SetupCacheSize: 32,
		OutputDir:      "artifacts",
	})
	opts := cfg.Options()
	if opts.SetupCacheSize != 32 {
		t.Fatalf("SetupCacheSize got=%d want=32", opts.SetupCacheSize)
	}
	if opts.OutputDir != "artifacts" {
		t.Fatalf("OutputDir got=%s want=artifacts", opts.OutputDir)
	}
}

func TestNew_ZeroValuedFieldsKeepDefaults(t *testing.T) {
	cfg := New(&ProvingOptions{})
	opts := cfg.Options()
	if opts.SetupCacheSize != defaultSetupCacheSize {
		t.Fatalf("SetupCacheSize got=%d want=%d", opts.SetupCacheSize, defaultSetupCacheSize)
	}
	if opts.OutputDir != defaultOutputDir {
		t.Fatalf("OutputDir got=%s want=%s", opts.OutputDir, defaultOutputDir)
	}
}

// Package params resolves project metadata values from the environment.
//
// # Sources
//
// Each source yields a Layer: the metadata fields it explicitly sets.
// A field present in a layer overrides lower layers, even when its value is
// empty. Layers are applied lowest priority first:
//
//	projmeta.yaml < --env-file files < process environment < command-line flags
//
// # Environment Variables
//
//	PROJMETA_GROUP, PROJMETA_NAME, PROJMETA_VERSION, PROJMETA_DESCRIPTION
//
// Env files use the .env format understood by github.com/joho/godotenv.
//
// # Example Usage
//
//	fileLayer, err := params.FromEnvFiles([]string{"release.env"})
//	if err != nil {
//	    return err
//	}
//	meta := params.Apply(cfg.Metadata(), fileLayer, params.FromEnviron(os.LookupEnv))
package params

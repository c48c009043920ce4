package configs

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix é o prefixo das variáveis de ambiente (JAPONG_PORT, JAPONG_KEY...).
const EnvPrefix = "JAPONG"

// NormalizeFlags aceita --stop_on_close como sinônimo de --stop-on-close.
func NormalizeFlags(fs *pflag.FlagSet) {
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
}

// BindEnv preenche as flags não informadas a partir do ambiente.
// Deve ser chamada depois de todas as flags estarem definidas.
func BindEnv(fs *pflag.FlagSet, prefix string) {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

package fork

type ProcessOpt = func(p *Process)

// WithArgs добавляет процессу аргументы командной строки
func WithArgs(args ...string) ProcessOpt {
	return func(p *Process) {
		p.cmd.Args = append(p.cmd.Args, args...)
	}
}

package theme

func builtinDefinitions() []Definition {
	return []Definition{
		{
			Key:   DefaultKey,
			Label: "Frosted Glass",
			Values: map[Role]string{
				RolePage:        "min-h-screen bg-gradient-to-br from-slate-900 via-indigo-900 to-slate-800 text-white",
				RoleCard:        "glass-card mx-auto max-w-md rounded-3xl border border-white/20 bg-white/10 p-8 backdrop-blur-xl",
				RoleAvatar:      "h-24 w-24 rounded-full ring-4 ring-white/40",
				RoleName:        "text-2xl font-semibold tracking-tight",
				RoleBio:         "text-sm text-white/70",
				RoleLinksButton: "glass-button block w-full rounded-2xl border border-white/25 bg-white/10 px-5 py-3 text-center font-medium backdrop-blur hover:bg-white/20",
				RoleFooter:      "text-xs text-white/50",
			},
		},
		{
			Key:   "ocean",
			Label: "Ocean",
			Values: map[Role]string{
				RolePage:        "min-h-screen bg-gradient-to-b from-sky-950 to-cyan-900 text-cyan-50",
				RoleCard:        "mx-auto max-w-md rounded-3xl bg-sky-900/60 p-8 shadow-lg shadow-cyan-950",
				RoleAvatar:      "h-24 w-24 rounded-full ring-4 ring-cyan-400",
				RoleName:        "text-2xl font-semibold text-cyan-100",
				RoleBio:         "text-sm text-cyan-200/80",
				RoleLinksButton: "block w-full rounded-full bg-cyan-500 px-5 py-3 text-center font-semibold text-sky-950 hover:bg-cyan-400",
				RoleFooter:      "text-xs text-cyan-300/60",
			},
		},
		{
			Key:   "sunset",
			Label: "Sunset",
			Values: map[Role]string{
				RolePage:        "min-h-screen bg-gradient-to-b from-orange-400 via-rose-500 to-purple-700 text-white",
				RoleCard:        "mx-auto max-w-md rounded-3xl bg-black/20 p-8",
				RoleAvatar:      "h-24 w-24 rounded-full ring-4 ring-amber-200",
				RoleName:        "text-2xl font-bold",
				RoleBio:         "text-sm text-amber-50/90",
				RoleLinksButton: "block w-full rounded-xl bg-amber-100 px-5 py-3 text-center font-semibold text-rose-700 hover:bg-white",
				RoleFooter:      "text-xs text-white/70",
			},
		},
		{
			Key:   "forest",
			Label: "Forest",
			Values: map[Role]string{
				RolePage:        "min-h-screen bg-emerald-950 text-emerald-50",
				RoleCard:        "mx-auto max-w-md rounded-2xl border border-emerald-800 bg-emerald-900 p-8",
				RoleAvatar:      "h-24 w-24 rounded-full ring-4 ring-lime-400",
				RoleName:        "text-2xl font-semibold text-lime-200",
				RoleBio:         "text-sm text-emerald-200",
				RoleLinksButton: "block w-full rounded-lg border-2 border-lime-400 px-5 py-3 text-center font-medium text-lime-200 hover:bg-lime-400 hover:text-emerald-950",
				RoleFooter:      "text-xs text-emerald-400",
			},
		},
		{
			Key:   "midnight",
			Label: "Midnight",
			Values: map[Role]string{
				RolePage:        "min-h-screen bg-black text-zinc-100",
				RoleCard:        "mx-auto max-w-md p-8",
				RoleAvatar:      "h-24 w-24 rounded-full ring-2 ring-zinc-600",
				RoleName:        "text-2xl font-semibold",
				RoleBio:         "text-sm text-zinc-400",
				RoleLinksButton: "block w-full rounded-md bg-zinc-900 px-5 py-3 text-center font-medium ring-1 ring-zinc-700 hover:ring-violet-500",
				RoleFooter:      "text-xs text-zinc-600",
			},
		},
		{
			Key:   "paper",
			Label: "Paper",
			Values: map[Role]string{
				RolePage:        "min-h-screen bg-stone-50 text-stone-900",
				RoleCard:        "mx-auto max-w-md p-8",
				RoleAvatar:      "h-24 w-24 rounded-full ring-2 ring-stone-300 grayscale",
				RoleName:        "font-serif text-2xl",
				RoleBio:         "text-sm text-stone-600",
				RoleLinksButton: "block w-full border border-stone-900 px-5 py-3 text-center font-serif hover:bg-stone-900 hover:text-stone-50",
				RoleFooter:      "text-xs text-stone-500",
			},
		},
	}
}

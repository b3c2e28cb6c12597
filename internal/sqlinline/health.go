package sqlinline

// QInsertHealthRecord appends a measurement unless it equals the latest one.
const QInsertHealthRecord = `--sql 3743f83b-a972-422e-9bb7-333cfe080c7b
insert into user_health_history (user_id, weight, height, recorded_at)
select $1::bigint, $2::numeric, $3::numeric, now()
where not exists (
    select 1
    from (
        select weight, height
        from user_health_history
        where user_id = $1::bigint
        order by recorded_at desc, history_id desc
        limit 1
    ) latest
    where latest.weight = $2::numeric and latest.height = $3::numeric
);
`

const QSelectHealthHistory = `--sql c1f3b291-5130-4d47-ba1f-ed4cf2ab201b
select history_id, user_id, weight::float8, height::float8, bmi::float8, recorded_at
from user_health_history
where user_id = $1::bigint
order by recorded_at desc, history_id desc;
`
